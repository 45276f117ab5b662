// Package output serializes parse results for machine consumption.
package output

import (
	"encoding/json"

	"github.com/ukaji3/csvpeek-go/pkg/csvpeek/models"
)

// ColumnSummary describes one column of a parsed table.
type ColumnSummary struct {
	// Name is the column name after de-duplication.
	Name string `json:"name"`
	// Type is the inferred column type.
	Type models.ColumnType `json:"type"`
	// Missing is the number of missing cells.
	Missing int `json:"missing"`
}

// Summary describes the shape of a parse result.
type Summary struct {
	// Rows is the number of data rows.
	Rows int `json:"rows"`
	// Columns lists the columns in table order.
	Columns []ColumnSummary `json:"columns"`
	// Delimiter is the field separator used, empty for spreadsheet input.
	Delimiter string `json:"delimiter,omitempty"`
	// Warnings lists rows whose length did not match the header.
	Warnings []models.RowLengthMismatch `json:"warnings,omitempty"`
}

// Summarize builds a Summary from a parse result.
func Summarize(r *models.Result) Summary {
	t := r.Table
	s := Summary{
		Rows:     t.NumRows(),
		Columns:  make([]ColumnSummary, 0, t.NumColumns()),
		Warnings: r.Warnings,
	}
	if r.Delimiter != 0 {
		s.Delimiter = string(r.Delimiter)
	}
	for _, col := range t.Columns() {
		s.Columns = append(s.Columns, ColumnSummary{
			Name:    col.Name(),
			Type:    col.Type(),
			Missing: col.MissingCount(),
		})
	}
	return s
}

// ToJSON serializes the summary of r.
func ToJSON(r *models.Result, pretty bool) ([]byte, error) {
	s := Summarize(r)
	if pretty {
		return json.MarshalIndent(s, "", "  ")
	}
	return json.Marshal(s)
}
