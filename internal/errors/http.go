package errors

import "fmt"

// NewHTTPError builds a classified error for a non-success response.
func NewHTTPError(statusCode int, body, operation string) *ClassifiedError {
	return &ClassifiedError{
		Category:   categoryForStatus(statusCode),
		StatusCode: statusCode,
		Body:       body,
		Underlying: fmt.Errorf("%s: HTTP %d", operation, statusCode),
	}
}

// NewNetworkError builds a classified error for a failure below HTTP:
// DNS, connect, TLS. Always recoverable since the condition may be
// transient.
func NewNetworkError(operation string, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:   Recoverable,
		Underlying: fmt.Errorf("%s: %w", operation, err),
	}
}

// categoryForStatus maps an HTTP status to a retry category. 408 and 429
// are the only 4xx codes worth retrying; everything else below 500 is a
// caller mistake that will repeat verbatim.
func categoryForStatus(statusCode int) Category {
	switch {
	case statusCode == 408 || statusCode == 429:
		return Recoverable
	case statusCode >= 400 && statusCode < 500:
		return Irrecoverable
	default:
		return Recoverable
	}
}
