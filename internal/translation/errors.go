package translation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSourceOrTarget reports an empty source or target at
	// adapter construction.
	ErrInvalidSourceOrTarget = errors.New("source and target languages must not be empty")

	// ErrTooManyRequests reports an HTTP 429 from the backend. It is
	// never retried.
	ErrTooManyRequests = errors.New("backend rejected the request with status 429 (too many requests)")

	// ErrEmptyBatch reports a batch call with no inputs.
	ErrEmptyBatch = errors.New("batch translation requires at least one text")

	// ErrFileNotFound reports a file translation against a path that
	// does not exist.
	ErrFileNotFound = errors.New("file to translate does not exist")
)

// RequestError reports a non-success HTTP status other than 429.
type RequestError struct {
	Status int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("backend request failed with status %d", e.Status)
}

// NotFoundError reports a successful backend response from which no
// translation could be extracted.
type NotFoundError struct {
	Text string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no translation found for %q", e.Text)
}
