// Package dsv provides error types for option resolution, decoding and encoding.
package dsv

import (
	"errors"
	"fmt"

	"github.com/shapestone/shape-dsv/internal/parser"
)

// Decoding errors, wrapped by *DecodeError.
var (
	// ErrUnterminatedQuote indicates the input ended inside a quoted field.
	ErrUnterminatedQuote = parser.ErrUnterminatedQuote
	// ErrBareQuote indicates an unescaped quote character under QuoteNone.
	ErrBareQuote = parser.ErrBareQuote
	// ErrUnexpectedEOF indicates the input ended right after an escape character.
	ErrUnexpectedEOF = parser.ErrUnexpectedEOF
	// ErrNotNumeric indicates a non-numeric unquoted field under QuoteNonNumeric.
	ErrNotNumeric = parser.ErrNotNumeric
)

// Encoding errors, wrapped by *EncodeError.
var (
	// ErrNeedEscape indicates a character must be escaped but the dialect has no escape character.
	ErrNeedEscape = errors.New("need to escape, but no escapechar set")
	// ErrEmptyFieldNeedsQuote indicates a record of one empty field under QuoteNone.
	ErrEmptyFieldNeedsQuote = errors.New("single empty field record must be quoted")
)

// ConfigError reports an invalid option or dialect.
// Every failure to parse or resolve options is reported as a *ConfigError.
type ConfigError struct {
	// Option is the option name, empty when the failure is not tied to one option.
	Option string
	// Msg describes the problem.
	Msg string
	// Err is the underlying error, if any.
	Err error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Msg != "":
		return "dsv: " + e.Msg
	case e.Err != nil:
		return "dsv: " + e.Err.Error()
	}
	return "dsv: invalid option " + e.Option
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// DecodeError represents a decoding error with position information.
type DecodeError struct {
	// Line is the line where the error occurred (1-indexed).
	Line int
	// Column is the column where the error occurred (1-indexed).
	Column int
	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message with position information.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("dsv: parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError reports a field that cannot be written under the dialect.
type EncodeError struct {
	// Field is the 0-indexed position of the field in the record.
	Field int
	// Err is the underlying error.
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("dsv: cannot encode field %d: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *EncodeError) Unwrap() error {
	return e.Err
}

// decodeError converts a parser error into a *DecodeError.
func decodeError(err error) error {
	var perr *parser.Error
	if errors.As(err, &perr) {
		return &DecodeError{Line: perr.Line, Column: perr.Column, Err: perr.Err}
	}
	return err
}
