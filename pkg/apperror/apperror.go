package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the rendering layer. The clinic API signals
// failure two different ways (a falsy success payload vs a failed request);
// KindRemoteRejected and KindTransport keep those causes distinct.
type Kind int

const (
	KindBadInput Kind = iota + 1
	KindUnauthorized
	KindRemoteRejected
	KindTransport
	KindInternal
)

// Error is the application error carried across package boundaries.
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func BadInput(message string, err error) *Error {
	return &Error{Kind: KindBadInput, Message: message, Err: err}
}

func Unauthorized(err error) *Error {
	return &Error{Kind: KindUnauthorized, Message: "unauthorized", Err: err}
}

// RemoteRejected marks a well-formed backend response that reported failure.
func RemoteRejected(message string, err error) *Error {
	return &Error{Kind: KindRemoteRejected, Message: message, Err: err}
}

// Transport marks a network or decode failure before any backend verdict.
func Transport(message string, err error) *Error {
	return &Error{Kind: KindTransport, Message: message, Err: err}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

func IsKind(err error, kind Kind) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}

func IsTransport(err error) bool {
	return IsKind(err, KindTransport)
}

func IsRemoteRejected(err error) bool {
	return IsKind(err, KindRemoteRejected)
}
