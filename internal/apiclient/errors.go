package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound matches an HTTPError with status 404.
	ErrNotFound = errors.New("resource not found")
	// ErrValidation matches an HTTPError with a 4xx status (other than 404) on a write request.
	ErrValidation = errors.New("validation failed")
	// ErrEmptyBody is returned when a response to decode has no body.
	ErrEmptyBody = errors.New("empty response body")
)

// NetworkError is a transport failure: the request never produced an HTTP response.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: network error: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is a non-2xx response.
type HTTPError struct {
	Method string
	URL    string
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: http %d", e.Method, e.URL, e.Status)
	}
	return fmt.Sprintf("%s %s: http %d: %s", e.Method, e.URL, e.Status, e.Body)
}

// Is lets callers use errors.Is(err, ErrNotFound) and errors.Is(err, ErrValidation).
func (e *HTTPError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrValidation:
		return isWrite(e.Method) && e.Status >= 400 && e.Status < 500 && e.Status != http.StatusNotFound
	}
	return false
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not an HTTPError.
func StatusCode(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Status
	}
	return 0
}

func isWrite(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}
