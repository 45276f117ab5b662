// Package csvpeek parses delimited text into typed tables and renders short previews.
package csvpeek

import (
	"github.com/ukaji3/csvpeek-go/pkg/csvpeek/parser"
	"github.com/ukaji3/csvpeek-go/pkg/csvpeek/render"
)

// Format represents the input file format.
type Format string

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = ""
	// FormatCSV reads delimited text.
	FormatCSV Format = "csv"
	// FormatXLSX reads a single worksheet of an Excel workbook.
	FormatXLSX Format = "xlsx"
)

// Options configures parsing.
type Options struct {
	// Format selects the reader for ParseFile. FormatAuto uses the file extension.
	Format Format
	// Delimiter is the field separator. Zero means comma, or tab for .tsv files.
	Delimiter rune
	// SniffDelimiter guesses the delimiter from the first line.
	SniffDelimiter bool
	// NoHeader treats the first record as data.
	NoHeader bool
	// SkipBlankLines specifies whether empty lines are ignored.
	// If nil, defaults to true.
	SkipBlankLines *bool
	// MissingTokens lists values read as missing.
	// If nil, defaults to parser.DefaultMissingTokens.
	MissingTokens []string
	// Sheet names the worksheet to read from a workbook. Empty means the first sheet.
	Sheet string
}

// DefaultOptions returns default parse options.
func DefaultOptions() Options {
	return Options{
		Format: FormatAuto,
	}
}

// ShouldSkipBlankLines returns whether empty lines are ignored.
func (o Options) ShouldSkipBlankLines() bool {
	if o.SkipBlankLines != nil {
		return *o.SkipBlankLines
	}
	return true
}

// ParserConfig converts the options into a parser configuration.
func (o Options) ParserConfig() parser.Config {
	return parser.Config{
		Delimiter:      o.Delimiter,
		Sniff:          o.SniffDelimiter,
		NoHeader:       o.NoHeader,
		SkipBlankLines: o.ShouldSkipBlankLines(),
		MissingTokens:  o.MissingTokens,
	}
}

// PreviewOptions configures Preview.
type PreviewOptions = render.Options

// DefaultPreviewOptions returns default preview options: five rows,
// right-aligned, NaN for missing values.
func DefaultPreviewOptions() PreviewOptions {
	return render.DefaultOptions()
}
