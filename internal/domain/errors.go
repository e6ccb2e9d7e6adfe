package domain

import (
	"errors"
	"fmt"
)

// ErrNoResponseBody is reported through SetupError when the HTTP response
// carried no readable body.
var ErrNoResponseBody = errors.New("response has no body")

// SetupError is fatal: the streaming request never became a usable stream.
// It is raised before any frame processing, so no plaintext has been emitted.
type SetupError struct {
	StatusCode int    // zero when the failure was not an HTTP status
	Status     string // e.g. "503 Service Unavailable"
	Err        error
}

func (e *SetupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("stream setup: %v", e.Err)
	}
	return fmt.Sprintf("stream setup: unexpected status %s", e.Status)
}

func (e *SetupError) Unwrap() error { return e.Err }

// ParseError is fatal: a non-empty line of the stream was not valid JSON.
// Per-frame decrypt failures are NOT errors of this kind; they are logged
// and skipped.
type ParseError struct {
	Line int // 1-based index of the offending non-empty line
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("stream frame %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
