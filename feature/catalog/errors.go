package catalog

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// FetchError reports a catalog that could not be retrieved or read.
type FetchError struct {
	Locator string
	Reason  string
	// StatusCode is set for HTTP responses other than 200.
	StatusCode int
	Err        error
	timeout    bool
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("fetch %s: %s", e.Locator, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error { return e.Err }

// Kind returns the error kind tag.
func (e *FetchError) Kind() string { return "fetch" }

// Timeout reports whether the fetch failed because its deadline passed.
func (e *FetchError) Timeout() bool { return e.timeout }

func newFetchError(locator, reason string, err error) *FetchError {
	fe := &FetchError{Locator: locator, Reason: reason, Err: err}
	if isTimeout(err) {
		fe.timeout = true
		fe.Reason = "timed out"
	}
	return fe
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
