package weather

import (
	"errors"
	"fmt"
	"net/http"
)

// Fallback messages shown when the service or transport gives no detail.
const (
	MessageNotFound   = "Not found"
	MessageFetchError = "Error fetching data"
)

// StatusError is returned when the service answers with a non-success status.
// Detail is the service-supplied "detail" field, empty when absent.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return MessageNotFound
}

// TransportError is returned when the request could not complete or the
// success body could not be decoded.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	if e.Err == nil || e.Err.Error() == "" {
		return MessageFetchError
	}
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Message maps a lookup error to the text shown to the user.
// Service detail wins, then "Not found" for status failures, then the error's
// own message, then the generic fetch failure text.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Error()
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr.Error()
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return MessageFetchError
}

// IsNotFound reports whether err is a 404 from the service.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}

func newTransportError(format string, args ...any) *TransportError {
	return &TransportError{Err: fmt.Errorf(format, args...)}
}
