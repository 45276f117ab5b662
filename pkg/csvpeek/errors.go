package csvpeek

import (
	"errors"
	"fmt"

	"github.com/ukaji3/csvpeek-go/pkg/csvpeek/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input could not be read as CSV or xlsx.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Parser errors, re-exported for callers that only import this package.
var (
	ErrUnterminatedQuote = parser.ErrUnterminatedQuote
	ErrInvalidEncoding   = parser.ErrInvalidEncoding
	ErrInvalidDelimiter  = parser.ErrInvalidDelimiter
	ErrSheetNotFound     = parser.ErrSheetNotFound
)

// MalformedInputError is a fatal parse error carrying the input position.
type MalformedInputError = parser.MalformedInputError

// LoadError represents an error while loading a file.
type LoadError struct {
	Path  string
	Stage string // "open", "read", "decode", "parse"
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error for %q (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path, stage string, err error) *LoadError {
	return &LoadError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
