package catalog

import (
	"fmt"

	"github.com/go-faster/errors"
)

var (
	ErrFetch           = errors.New("could not load data")
	ErrInvalidPageSize = errors.New("page size must be positive")
)

// FetchError wraps any failure to obtain a required collection.
type FetchError struct {
	Resource string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

// StatusError is a non-success response from the catalog service.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("catalog service returned status %d", e.Status)
	}
	return fmt.Sprintf("catalog service returned status %d: %s", e.Status, e.Message)
}
