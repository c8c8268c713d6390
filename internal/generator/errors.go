package generator

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey means no generative-model credential is configured.
// It is raised before any network call is attempted.
var ErrMissingAPIKey = errors.New("generator: no API key configured")

// ParseError means the model response was not a valid JSON array. Raw holds
// the unmodified model output for diagnostics.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("generator: response is not a JSON array: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
