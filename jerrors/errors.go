// Package jerrors holds the error types raised while declaring and building
// schema types, and converts errors into the GraphQL response error shape.
package jerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Codes placed in Error.Extensions.Code.
const (
	CodeInvalidName   = "InvalidName"
	CodeConfiguration = "Configuration"
	CodeUnknown       = "Unknown"
)

// InvalidNameError is returned when a type or member name does not satisfy
// the GraphQL name grammar.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid name %q: %s", e.Name, e.Reason)
	}
	return fmt.Sprintf("Names must match /^[_a-zA-Z][_a-zA-Z0-9]*$/ but %q does not.", e.Name)
}

// ConfigurationError reports a type definition that can not be built, e.g. an
// enum without members or with two members of the same name.
type ConfigurationError struct {
	TypeName string
	// Member is the offending member name, empty when the error concerns the
	// member list as a whole.
	Member string
	Reason string
	Cause  error
}

func (e *ConfigurationError) Error() string {
	var b strings.Builder
	b.WriteString("enum ")
	b.WriteString(e.TypeName)
	if e.Member != "" {
		fmt.Fprintf(&b, ": member %q", e.Member)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// Error is the json representation of an error in a GraphQL response.
type Error struct {
	Message    string          `json:"message"`
	Extensions ErrorExtensions `json:"extensions"`
	Paths      []string        `json:"paths"`
}

// ErrorExtensions carries the machine readable error code.
type ErrorExtensions struct {
	Code string `json:"code"`
}

func (e *Error) Error() string {
	return e.Message
}

// ConvertError wraps err into an *Error, picking the code from the typed errors
// of this package.
func ConvertError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	code := CodeUnknown
	var nameErr *InvalidNameError
	var cfgErr *ConfigurationError
	switch {
	case errors.As(err, &cfgErr):
		code = CodeConfiguration
	case errors.As(err, &nameErr):
		code = CodeInvalidName
	}

	return &Error{
		Message:    err.Error(),
		Extensions: ErrorExtensions{Code: code},
		Paths:      []string{},
	}
}

// New creates an *Error with the given code.
func New(code, message string, paths ...string) *Error {
	if paths == nil {
		paths = []string{}
	}
	return &Error{Message: message, Extensions: ErrorExtensions{Code: code}, Paths: paths}
}
