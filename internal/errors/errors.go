package errors

import (
	"errors"
	"fmt"

	"github.com/solo-blaster/companion/internal/errors/i18n"
)

// DefaultLocale is the fallback locale for user-facing messages.
const DefaultLocale = "en-US"

// Error is a domain error tagged with a machine-readable code. Message is
// the developer-facing text; the user-facing text comes from the i18n
// catalog keyed by Code.
type Error struct {
	Code     Code
	Message  string
	Metadata map[string]string
	cause    error
}

// New creates a domain error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code to an underlying error.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// WithMetadata returns a copy of the error carrying formatting metadata
// for the message catalog.
func (e *Error) WithMetadata(metadata map[string]string) *Error {
	clone := *e
	clone.Metadata = make(map[string]string, len(metadata))
	for k, v := range metadata {
		clone.Metadata[k] = v
	}
	return &clone
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// GetCode extracts the error code from any error. Returns CodeUnknown if
// the error is not a domain error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// IsCode checks whether the error carries the specified code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}

// UserMessage formats the user-facing message for an error using the
// catalog for the given locale, defaulting to en-US. Non-domain errors
// yield a generic message.
func UserMessage(err error, locale string) string {
	if err == nil {
		return ""
	}
	if locale == "" {
		locale = DefaultLocale
	}
	catalog := i18n.GetCatalog(locale)

	var e *Error
	if errors.As(err, &e) {
		return catalog.Format(string(e.Code), e.Metadata)
	}
	return catalog.Format(string(CodeUnknown), nil)
}
