package product

import (
	"fmt"

	"github.com/go-faster/errors"
)

var (
	ErrMalformedProduct   = errors.New("malformed product")
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
)

// ValidationError reports the first draft field that failed a local rule.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// SubmissionError is a failed create request. Message is safe to show to the
// user; Err and Status are kept for diagnostics.
type SubmissionError struct {
	Message string
	Status  int
	Err     error
}

func (e *SubmissionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("submission failed: %s: %v", e.Message, e.Err)
	}
	return "submission failed: " + e.Message
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
