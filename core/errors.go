package core

import (
	"errors"
	"fmt"
)

// ErrNoDocument is returned when a pipeline stage is handed a nil or
// unparsed PageDocument.
var ErrNoDocument = errors.New("no page document")

// ErrorKind categorizes terminal pipeline errors.
type ErrorKind int

const (
	// KindFetchFailure means the page could not be retrieved or parsed.
	KindFetchFailure ErrorKind = iota + 1
	// KindConfiguration means an internal contract was violated, such as a
	// metric set missing one of the nine kinds.
	KindConfiguration
)

func (k ErrorKind) String() string {
	switch k {
	case KindFetchFailure:
		return "fetch failure"
	case KindConfiguration:
		return "configuration error"
	default:
		return "unknown error"
	}
}

// Error carries a category, context and original cause.
type Error struct {
	Kind       ErrorKind
	URL        string
	StatusCode int // upstream HTTP status, 0 if none was received
	Message    string
	Cause      error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.URL != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.URL)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// FetchFailure builds a KindFetchFailure error.
func FetchFailure(url string, status int, message string, cause error) *Error {
	return &Error{Kind: KindFetchFailure, URL: url, StatusCode: status, Message: message, Cause: cause}
}

// ConfigurationError builds a KindConfiguration error.
func ConfigurationError(message string) *Error {
	return &Error{Kind: KindConfiguration, Message: message}
}

// IsFetchFailure reports whether err is or wraps a fetch failure.
func IsFetchFailure(err error) bool {
	return kindOf(err) == KindFetchFailure
}

// IsConfiguration reports whether err is or wraps a configuration error.
func IsConfiguration(err error) bool {
	return kindOf(err) == KindConfiguration
}

func kindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
