package client

import "fmt"

// ResponseError is returned when the service answers with a non-2xx status.
// Detail holds the body's "detail" field, or the status text when the body
// could not be read.
type ResponseError struct {
	StatusCode int
	Detail     string
}

func (e *ResponseError) Error() string {
	return e.Detail
}

// IsClientError reports whether the service blamed the request (4xx)
func (e *ResponseError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// TransportError is returned when the service could not be reached at all
type TransportError struct {
	BackendURL string
	Err        error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("unable to reach backend at %s: %v", e.BackendURL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
