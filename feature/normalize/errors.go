package normalize

import (
	"fmt"
)

// Record fields a catalog entry must carry.
const (
	FieldID        = "id"
	FieldName      = "name"
	FieldStackSize = "stackSize"
)

// SchemaError reports a record with a missing or mistyped field.
type SchemaError struct {
	// Index is the position of the record in the dataset, -1 for the dataset itself.
	Index int
	// ID is the record's id when it could be parsed.
	ID    int
	HasID bool
	// Field is the offending field, empty when the record itself is malformed.
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	where := "dataset"
	if e.Index >= 0 {
		where = fmt.Sprintf("record %d", e.Index)
		if e.HasID {
			where = fmt.Sprintf("record %d (id %d)", e.Index, e.ID)
		}
	}
	if e.Field == "" {
		return fmt.Sprintf("schema error: %s: %s", where, e.Reason)
	}
	return fmt.Sprintf("schema error: %s: field %q: %s", where, e.Field, e.Reason)
}

// Kind returns the error kind tag.
func (e *SchemaError) Kind() string { return "schema" }
