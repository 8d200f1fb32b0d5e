package provider

import (
	"errors"
	"fmt"
)

// ErrTimeout reports that the provider call exceeded the client timeout.
var ErrTimeout = errors.New("provider request timed out")

// ModelLoadingError is the provider's warming-up signal. The request can be
// retried after the suggested delay.
type ModelLoadingError struct {
	RetryAfter int
}

func (e *ModelLoadingError) Error() string {
	return fmt.Sprintf("model is loading, retry after %d seconds", e.RetryAfter)
}

// StatusError carries a non-200, non-503 provider response verbatim.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error: %d", e.Status)
}

// RequestError wraps a transport failure that is neither a timeout nor an
// HTTP-level error.
type RequestError struct {
	Detail string
}

func (e *RequestError) Error() string {
	return "request failed: " + e.Detail
}
