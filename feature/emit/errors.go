package emit

import "fmt"

// EmitError reports a failure to render a registry. With a valid style and a
// registry from registry.Build it indicates a defect in the generator.
type EmitError struct {
	Reason string
	Err    error
}

func (e *EmitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("emit error: %s: %v", e.Reason, e.Err)
	}
	return "emit error: " + e.Reason
}

func (e *EmitError) Unwrap() error { return e.Err }

// Kind returns the error kind tag.
func (e *EmitError) Kind() string { return "emit" }
