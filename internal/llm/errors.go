package llm

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of failure classes surfaced by pipeline
// stages. Callers branch on the kind instead of matching message text.
type ErrorKind int

const (
	// KindValidation covers input rejected before any external call.
	KindValidation ErrorKind = iota
	// KindConfiguration covers missing credentials or an unreachable
	// local model service.
	KindConfiguration
	// KindTransport covers network or service failures reaching a model.
	KindTransport
	// KindParse covers model responses with no extractable JSON.
	KindParse
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConfiguration:
		return "configuration"
	case KindTransport:
		return "transport"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// Error carries a failure class and a human-readable message. Transport
// errors caused by rate limiting set RateLimited, which is the only
// condition the retry loop acts on.
type Error struct {
	Kind        ErrorKind
	Message     string
	RateLimited bool
	cause       error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// NewError creates an Error of the given kind.
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError creates an Error of the given kind wrapping a cause.
func WrapError(kind ErrorKind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), cause: cause}
}

// RateLimitedError creates a retryable transport error.
func RateLimitedError(cause error, format string, args ...any) *Error {
	return &Error{
		Kind:        KindTransport,
		Message:     fmt.Sprintf(format, args...),
		RateLimited: true,
		cause:       cause,
	}
}

// KindOf reports the error's kind. Errors outside the taxonomy are
// reported as transport failures, the broadest class.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindTransport
}

// IsRateLimited reports whether err is a retryable rate-limit error.
func IsRateLimited(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.RateLimited
}
