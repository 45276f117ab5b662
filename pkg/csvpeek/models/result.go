package models

import "fmt"

// RowLengthMismatch records a data row whose field count differed from the header.
// Short rows are padded with missing cells, long rows are truncated.
type RowLengthMismatch struct {
	// Row is the data row index (1-based, header excluded).
	Row int `json:"row"`
	// Line is the source line on which the record starts (1-based).
	Line int `json:"line"`
	// Expected is the number of columns in the table.
	Expected int `json:"expected"`
	// Got is the number of fields found in the record.
	Got int `json:"got"`
}

// Truncated reports whether extra fields were dropped.
func (w RowLengthMismatch) Truncated() bool { return w.Got > w.Expected }

func (w RowLengthMismatch) String() string {
	action := "padded with missing values"
	if w.Truncated() {
		action = "truncated"
	}
	return fmt.Sprintf("line %d: row %d has %d fields, expected %d (%s)", w.Line, w.Row, w.Got, w.Expected, action)
}

// Result is the output of a successful parse.
type Result struct {
	// Table is the parsed table.
	Table *Table
	// Warnings contains one entry per row whose length did not match the header.
	Warnings []RowLengthMismatch
	// Delimiter is the field separator that was used.
	Delimiter rune
}
