package resemble

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed provider call so callers can branch
// programmatically instead of matching on message text.
type ErrorKind string

const (
	// KindTransport covers connection-level failures before a response arrived.
	KindTransport ErrorKind = "transport"
	// KindTimeout is a transport failure caused by the request deadline.
	KindTimeout ErrorKind = "timeout"
	// KindAuth is a 401/403 rejection, typically a missing or invalid API key.
	KindAuth ErrorKind = "auth"
	// KindHTTP is any other non-2xx response.
	KindHTTP ErrorKind = "http"
	// KindMalformed means the provider answered 2xx but the payload was unusable.
	KindMalformed ErrorKind = "malformed"
)

// Error is the failure type returned by all Client calls.
type Error struct {
	Kind   ErrorKind
	Status int // HTTP status code, when a response was received
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("resemble: %s: %v", e.Msg, e.Err)
	}
	return "resemble: " + e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the classification of err, or "" if err did not come
// from a provider call.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
