package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/csvpeek-go/pkg/csvpeek/models"
)

// DefaultLimit is the number of rows shown when no limit is configured.
const DefaultLimit = 5

// DefaultMissingToken stands in for missing cells.
const DefaultMissingToken = "NaN"

// DefaultMaxColWidth is the display width string cells are clipped to.
// 0 keeps strings whole.
const DefaultMaxColWidth = 0

// Align is the horizontal alignment of cells within their column.
type Align int

const (
	// AlignRight pads on the left.
	AlignRight Align = iota
	// AlignLeft pads on the right.
	AlignLeft
)

// ParseAlign converts "left" or "right" into an Align.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(s) {
	case "", "right":
		return AlignRight, nil
	case "left":
		return AlignLeft, nil
	default:
		return AlignRight, fmt.Errorf("invalid alignment: %s (must be left or right)", s)
	}
}

func (a Align) String() string {
	if a == AlignLeft {
		return "left"
	}
	return "right"
}

// Options configures Preview.
type Options struct {
	// Limit is the maximum number of data rows shown. Negative counts as 0.
	Limit int
	// Align applies to the header and every data cell.
	Align Align
	// MissingToken is printed for missing cells. Empty means DefaultMissingToken.
	MissingToken string
	// MaxColWidth clips string cells to this display width. 0 disables clipping.
	MaxColWidth int
	// ShowIndex prefixes each row with its 0-based row number.
	ShowIndex bool
}

// DefaultOptions returns the default preview options.
func DefaultOptions() Options {
	return Options{
		Limit:        DefaultLimit,
		Align:        AlignRight,
		MissingToken: DefaultMissingToken,
		MaxColWidth:  DefaultMaxColWidth,
	}
}

func (o Options) missingToken() string {
	if o.MissingToken == "" {
		return DefaultMissingToken
	}
	return o.MissingToken
}

// Preview renders the first Limit rows of t as a text block: a header line
// of column names, one line per row and, when rows were left out or the
// table is empty, a footer line giving the table shape. Lines are joined
// with "\n" without a trailing newline.
func Preview(t *models.Table, opts Options) string {
	limit := opts.Limit
	if limit < 0 {
		limit = 0
	}
	rows, cols := t.NumRows(), t.NumColumns()
	shown := min(limit, rows)

	var lines []string
	if cols > 0 {
		lines = renderGrid(t, shown, opts)
	}
	if rows > shown || rows == 0 || cols == 0 {
		lines = append(lines, Footer(rows, cols, shown))
	}
	return strings.Join(lines, "\n")
}

// Footer describes the table shape and how many rows a preview left out.
func Footer(rows, cols, shown int) string {
	if shown < rows {
		return fmt.Sprintf("[%d rows x %d columns, %d rows not shown]", rows, cols, rows-shown)
	}
	return fmt.Sprintf("[%d rows x %d columns]", rows, cols)
}

func renderGrid(t *models.Table, shown int, opts Options) []string {
	cols := t.NumColumns()

	// grid[0] is the header; the index column, if any, comes first.
	grid := make([][]string, shown+1)
	for r := range grid {
		grid[r] = make([]string, 0, cols+1)
	}
	if opts.ShowIndex {
		grid[0] = append(grid[0], "")
		for r := 0; r < shown; r++ {
			grid[r+1] = append(grid[r+1], strconv.Itoa(r))
		}
	}
	for c := 0; c < cols; c++ {
		col := t.Column(c)
		grid[0] = append(grid[0], controlEscaper.Replace(col.Name()))
		for r := 0; r < shown; r++ {
			grid[r+1] = append(grid[r+1], FormatCell(col.Cell(r), opts))
		}
	}

	widths := make([]int, len(grid[0]))
	for _, line := range grid {
		for c, s := range line {
			widths[c] = max(widths[c], DisplayWidth(s))
		}
	}

	lines := make([]string, len(grid))
	var b strings.Builder
	for r, line := range grid {
		b.Reset()
		for c, s := range line {
			if c > 0 {
				b.WriteByte(' ')
			}
			align := opts.Align
			if opts.ShowIndex && c == 0 {
				align = AlignLeft
			}
			last := c == len(line)-1
			writePadded(&b, s, widths[c], align, last)
		}
		lines[r] = b.String()
	}
	return lines
}

func writePadded(b *strings.Builder, s string, width int, align Align, last bool) {
	pad := width - DisplayWidth(s)
	if pad < 0 {
		pad = 0
	}
	if align == AlignRight {
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(s)
		return
	}
	b.WriteString(s)
	if !last {
		b.WriteString(strings.Repeat(" ", pad))
	}
}
