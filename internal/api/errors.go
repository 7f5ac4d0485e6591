package api

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned by every remote operation when no endpoint
// URL is set. The app stays usable against the local cache.
var ErrNotConfigured = errors.New("remote endpoint not configured")

// TransportError is a network or HTTP-status failure. Status is zero when
// the request never produced a response.
type TransportError struct {
	Op     string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: endpoint returned status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is an application-level failure: the endpoint answered with
// success=false.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return "unknown endpoint error"
	}
	return e.Message
}
