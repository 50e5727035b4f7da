package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinels matched by errors.Is against a *ResponseError.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// ResponseError is returned when the backend answered with a non-2xx status.
type ResponseError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
	Header     http.Header
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s %s: status %d", e.Method, e.URL, e.StatusCode)
}

// Is maps well-known statuses onto the package sentinels.
func (e *ResponseError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrConflict:
		return e.StatusCode == http.StatusConflict
	}
	return false
}

// RequestError is returned when a request was dispatched but no response
// arrived: connection refused, DNS failure, timeout, cancellation.
type RequestError struct {
	Method string
	URL    string
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Timeout reports whether the request hit the client timeout.
func (e *RequestError) Timeout() bool {
	var t interface{ Timeout() bool }
	return errors.As(e.Err, &t) && t.Timeout()
}

// SetupError is returned when a request could not be formed (unencodable
// payload, failing request hook).
type SetupError struct {
	Method string
	Path   string
	Err    error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("prepare %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *SetupError) Unwrap() error { return e.Err }
