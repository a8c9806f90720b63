// Package errors defines the categorized errors a checkout can end with.
// Bad operator entries never reach here; the input reader reprompts for
// them. What remains is input that ran out, pricing that cannot be
// computed, bad configuration and failed lookups.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInput means the operator's input ended or kept failing
	TypeInput Type = "INPUT_ERROR"

	// TypePricing means a strategy could not compute a charge
	TypePricing Type = "PRICING_ERROR"

	// TypeConfig means a config file, .env file or setting was rejected
	TypeConfig Type = "CONFIG_ERROR"

	// TypeNotFound means a lookup matched nothing
	TypeNotFound Type = "NOT_FOUND"
)

// Error is a categorized error with optional cause and context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error formats as "[TYPE] message" with ": cause" when there is one
func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("[%s] %s", e.Type, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
}

// Unwrap exposes the cause, so errors.Is(err, io.EOF) sees closed input
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext attaches a value for logs and returns e
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// IsType reports whether any error in err's chain is an *Error of type t
func IsType(err error, t Type) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Type == t
}

// Input reports input that ended or never produced a valid value
func Input(message string, cause error) *Error {
	return &Error{Type: TypeInput, Message: message, Cause: cause}
}

// Pricing reports a charge that cannot be computed
func Pricing(message string) *Error {
	return &Error{Type: TypePricing, Message: message}
}

// Config reports a rejected configuration source or value
func Config(message string, cause error) *Error {
	return &Error{Type: TypeConfig, Message: message, Cause: cause}
}

// NotFound reports a kind of thing with no match for identifier
func NotFound(kind, identifier string) *Error {
	return &Error{Type: TypeNotFound, Message: fmt.Sprintf("%s not found: %s", kind, identifier)}
}
