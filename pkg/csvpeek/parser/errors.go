package parser

import (
	"errors"
	"fmt"
)

// ErrUnterminatedQuote indicates a quoted field that is still open at end of input.
var ErrUnterminatedQuote = errors.New("unterminated quoted field")

// ErrInvalidEncoding indicates input that is not valid UTF-8 after BOM handling.
var ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")

// ErrInvalidDelimiter indicates a delimiter that cannot separate fields.
var ErrInvalidDelimiter = errors.New("invalid delimiter")

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// MalformedInputError is a fatal parse error with its position in the input.
type MalformedInputError struct {
	Line   int // 1-based
	Column int // 1-based byte column within Line
	Offset int // 0-based byte offset
	Err    error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input at line %d, column %d (offset %d): %v", e.Line, e.Column, e.Offset, e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// NewMalformedInputError creates a new MalformedInputError.
func NewMalformedInputError(line, column, offset int, err error) *MalformedInputError {
	return &MalformedInputError{
		Line:   line,
		Column: column,
		Offset: offset,
		Err:    err,
	}
}
