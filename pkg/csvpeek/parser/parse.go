package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/csvpeek-go/pkg/csvpeek/models"
)

// Config controls how text is split into a table.
type Config struct {
	// Delimiter is the single-byte ASCII field separator. Zero means comma.
	Delimiter rune
	// Sniff picks the delimiter from the first line, overriding Delimiter.
	Sniff bool
	// NoHeader treats the first record as data and names columns col_0, col_1, ...
	NoHeader bool
	// SkipBlankLines drops empty lines instead of reading them as one-field rows.
	SkipBlankLines bool
	// MissingTokens lists values read as missing. Nil means DefaultMissingTokens.
	MissingTokens []string
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		Delimiter:      ',',
		SkipBlankLines: true,
	}
}

func (c Config) missing() missingSet {
	if c.MissingTokens == nil {
		return newMissingSet(DefaultMissingTokens)
	}
	return newMissingSet(c.MissingTokens)
}

func (c Config) delimiter(text string) (rune, error) {
	if c.Sniff {
		return SniffDelimiter(text), nil
	}
	if c.Delimiter == 0 {
		return ',', nil
	}
	if !validDelimiter(c.Delimiter) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDelimiter, c.Delimiter)
	}
	return c.Delimiter, nil
}

// Parse converts delimited text into a typed table. Empty input yields an
// empty table. Rows whose length differs from the header are padded or
// truncated and reported in Result.Warnings.
//
// text is expected to be valid UTF-8 and is not checked. Use ParseBytes
// for raw file contents; it rejects invalid encodings with
// ErrInvalidEncoding.
func Parse(text string, cfg Config) (*models.Result, error) {
	text = strings.TrimPrefix(text, "\ufeff")

	delim, err := cfg.delimiter(text)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return &models.Result{Table: models.Empty(), Delimiter: delim}, nil
	}

	records, err := scanRecords(text, byte(delim), cfg.SkipBlankLines)
	if err != nil {
		return nil, err
	}

	result, err := build(records, cfg)
	if err != nil {
		return nil, err
	}
	result.Delimiter = delim
	return result, nil
}

// FromRecords builds a table from already split records, such as
// spreadsheet rows. Record i is reported as line i+1 in warnings.
func FromRecords(rows [][]string, cfg Config) (*models.Result, error) {
	records := make([]record, 0, len(rows))
	for i, row := range rows {
		if cfg.SkipBlankLines && isBlankRow(row) {
			continue
		}
		records = append(records, record{fields: row, line: i + 1})
	}
	return build(records, cfg)
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if v != "" {
			return false
		}
	}
	return true
}

func build(records []record, cfg Config) (*models.Result, error) {
	if len(records) == 0 {
		return &models.Result{Table: models.Empty()}, nil
	}

	var header []string
	data := records
	if !cfg.NoHeader {
		header = records[0].fields
		data = records[1:]
	}
	width := len(records[0].fields)
	names := columnNames(header, width)

	raw := make([][]string, width)
	for c := range raw {
		raw[c] = make([]string, 0, len(data))
	}

	var warnings []models.RowLengthMismatch
	for r, rec := range data {
		if len(rec.fields) != width {
			warnings = append(warnings, models.RowLengthMismatch{
				Row:      r + 1,
				Line:     rec.line,
				Expected: width,
				Got:      len(rec.fields),
			})
		}
		for c := 0; c < width; c++ {
			v := ""
			if c < len(rec.fields) {
				v = rec.fields[c]
			}
			raw[c] = append(raw[c], v)
		}
	}

	missing := cfg.missing()
	columns := make([]models.Column, width)
	for c, values := range raw {
		typ := inferType(values, missing)
		cells := make([]models.Cell, len(values))
		for r, v := range values {
			cells[r] = coerce(v, typ, missing)
		}
		columns[c] = models.NewColumn(names[c], typ, cells)
	}

	table, err := models.NewTable(columns)
	if err != nil {
		return nil, err
	}
	return &models.Result{Table: table, Warnings: warnings}, nil
}
