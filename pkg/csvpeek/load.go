package csvpeek

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/csvpeek-go/pkg/csvpeek/models"
	"github.com/ukaji3/csvpeek-go/pkg/csvpeek/parser"
	"github.com/ukaji3/csvpeek-go/pkg/csvpeek/render"
	"github.com/xuri/excelize/v2"
)

// Parse parses delimited text into a typed table. text must already be
// valid UTF-8; ParseBytes and ParseFile check the encoding.
func Parse(text string, opts Options) (*models.Result, error) {
	return parser.Parse(text, opts.ParserConfig())
}

// ParseBytes decodes and parses raw file contents.
func ParseBytes(data []byte, opts Options) (*models.Result, error) {
	return parser.ParseBytes(data, opts.ParserConfig())
}

// Preview renders the first rows of t.
func Preview(t *models.Table, opts PreviewOptions) string {
	return render.Preview(t, opts)
}

// ParseFile reads a CSV/TSV text file or one worksheet of an xlsx workbook.
func ParseFile(path string, opts Options) (*models.Result, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewLoadError(path, "open", ErrFileNotFound)
		}
		return nil, NewLoadError(path, "open", err)
	}

	format := opts.Format
	if format == FormatAuto {
		format = detectFormat(path)
	}

	switch format {
	case FormatXLSX:
		return parseWorkbook(path, opts)
	case FormatCSV:
		return parseTextFile(path, opts)
	default:
		return nil, NewLoadError(path, "open", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format))
	}
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	default:
		return FormatCSV
	}
}

func parseTextFile(path string, opts Options) (*models.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewLoadError(path, "read", err)
	}

	cfg := opts.ParserConfig()
	if cfg.Delimiter == 0 && strings.EqualFold(filepath.Ext(path), ".tsv") {
		cfg.Delimiter = '\t'
	}

	text, err := parser.Decode(data)
	if err != nil {
		return nil, NewLoadError(path, "decode", err)
	}
	result, err := parser.Parse(text, cfg)
	if err != nil {
		return nil, NewLoadError(path, "parse", err)
	}
	return result, nil
}

func parseWorkbook(path string, opts Options) (*models.Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewLoadError(path, "open", fmt.Errorf("%w: %v", ErrUnsupportedFormat, err))
	}
	defer f.Close()

	result, err := parser.ParseSheet(f, opts.Sheet, opts.ParserConfig())
	if err != nil {
		return nil, NewLoadError(path, "parse", err)
	}
	return result, nil
}
