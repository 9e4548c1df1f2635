package hpp

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownCredential = errors.New("unknown skin code")
	ErrBadSignature      = errors.New("bad merchant signature")
)

// MissingRequiredFieldError names every required parameter that had no value.
type MissingRequiredFieldError struct {
	Fields []string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("missing required parameter(s): %s", strings.Join(e.Fields, ", "))
}

type InvalidBooleanLiteralError struct {
	Field string
	Raw   string
}

func (e *InvalidBooleanLiteralError) Error() string {
	return fmt.Sprintf("Invalid value for '%s': %s", e.Field, e.Raw)
}

type InvalidTimestampError struct {
	Field string
	Raw   string
}

func (e *InvalidTimestampError) Error() string {
	return fmt.Sprintf("invalid timestamp for '%s': %q", e.Field, e.Raw)
}

type InvalidFieldTypeError struct {
	Field    string
	Expected string
	Got      string
}

func (e *InvalidFieldTypeError) Error() string {
	return fmt.Sprintf("invalid value for '%s': expected %s, got %q", e.Field, e.Expected, e.Got)
}

// UnknownOptionError is returned for session options that have no field.
type UnknownOptionError struct {
	Names []string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown session option(s): %s", strings.Join(e.Names, ", "))
}

// IsValidationError reports whether err describes malformed input rather
// than a credential or signature failure.
func IsValidationError(err error) bool {
	var (
		missing *MissingRequiredFieldError
		boolErr *InvalidBooleanLiteralError
		tsErr   *InvalidTimestampError
		typeErr *InvalidFieldTypeError
		optErr  *UnknownOptionError
	)
	return errors.As(err, &missing) || errors.As(err, &boolErr) || errors.As(err, &tsErr) ||
		errors.As(err, &typeErr) || errors.As(err, &optErr)
}
