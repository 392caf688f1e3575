// Package errors provides structured error types for nunit3xml.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	// KindContract marks a violation of the serializer input contract.
	KindContract ErrorKind = iota
	// KindFixture marks a fixture file that could not be read or decoded.
	KindFixture
	// KindSchema marks a fixture that failed schema validation.
	KindSchema
	// KindNotFound marks a missing fixture or suite.
	KindNotFound
)

// TranslationError is the base error type for nunit3xml.
type TranslationError struct {
	Kind    ErrorKind
	Message string
	Node    string // fully-qualified test name if applicable
	Cause   error  // underlying error
}

func (e *TranslationError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.Node != "" {
		return fmt.Sprintf("[%s] %s", e.Node, msg)
	}
	return msg
}

func (e *TranslationError) Unwrap() error {
	return e.Cause
}

// Contract creates a new contract-violation error.
func Contract(message string) *TranslationError {
	return &TranslationError{
		Kind:    KindContract,
		Message: message,
	}
}

// Contractf creates a new contract-violation error with formatting.
func Contractf(format string, args ...interface{}) *TranslationError {
	return Contract(fmt.Sprintf(format, args...))
}

// NodeContract creates a contract-violation error for a specific test node.
func NodeContract(node, message string) *TranslationError {
	return &TranslationError{
		Kind:    KindContract,
		Node:    node,
		Message: message,
	}
}

// Fixturef creates a new fixture error with formatting.
func Fixturef(format string, args ...interface{}) *TranslationError {
	return &TranslationError{
		Kind:    KindFixture,
		Message: fmt.Sprintf(format, args...),
	}
}

// FixtureWrap wraps an error from fixture loading with context.
func FixtureWrap(err error, message string) *TranslationError {
	return &TranslationError{
		Kind:    KindFixture,
		Message: message,
		Cause:   err,
	}
}

// SchemaWrap wraps a schema validation error with context.
func SchemaWrap(err error, message string) *TranslationError {
	return &TranslationError{
		Kind:    KindSchema,
		Message: message,
		Cause:   err,
	}
}

// NotFound creates a not found error.
func NotFound(what, name string) *TranslationError {
	return &TranslationError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, name),
	}
}

// KindOf returns the kind of err if it is (or wraps) a TranslationError.
func KindOf(err error) (ErrorKind, bool) {
	var te *TranslationError
	if stderrors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}
