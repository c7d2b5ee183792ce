// Package errors classifies transport failures so the retry layer can
// decide between backing off and failing fast.
package errors

import "fmt"

// Category determines how the retry layer treats a failure.
type Category int

const (
	// Recoverable failures may succeed on a later attempt: 5xx responses,
	// request timeouts, rate limiting, network-level errors.
	Recoverable Category = iota

	// Irrecoverable failures will not improve with retries: bad requests,
	// auth failures, missing resources.
	Irrecoverable
)

func (c Category) String() string {
	switch c {
	case Recoverable:
		return "recoverable"
	case Irrecoverable:
		return "irrecoverable"
	default:
		return fmt.Sprintf("unknown(%d)", int(c))
	}
}

// ClassifiedError carries the category alongside the HTTP detail.
type ClassifiedError struct {
	Category   Category
	StatusCode int    // 0 for non-HTTP failures
	Body       string // response body, when one was read
	Underlying error
}

func (e *ClassifiedError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] HTTP %d: %v", e.Category, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("[%s] %v", e.Category, e.Underlying)
}

func (e *ClassifiedError) Unwrap() error { return e.Underlying }

// IsIrrecoverable reports whether err is classified as not worth retrying.
func IsIrrecoverable(err error) bool {
	if classified, ok := err.(*ClassifiedError); ok {
		return classified.Category == Irrecoverable
	}
	return false
}
