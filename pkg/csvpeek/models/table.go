package models

import (
	"errors"
	"fmt"
)

// ErrRaggedColumns indicates columns of differing lengths were passed to NewTable.
var ErrRaggedColumns = errors.New("columns have different lengths")

// ErrDuplicateColumn indicates two columns share a name.
var ErrDuplicateColumn = errors.New("duplicate column name")

// Column is a named, typed sequence of cells.
type Column struct {
	name  string
	typ   ColumnType
	cells []Cell
}

// NewColumn creates a column. The cells slice is copied.
func NewColumn(name string, typ ColumnType, cells []Cell) Column {
	cp := make([]Cell, len(cells))
	copy(cp, cells)
	return Column{name: name, typ: typ, cells: cp}
}

// Name returns the column name.
func (c Column) Name() string { return c.name }

// Type returns the inferred column type.
func (c Column) Type() ColumnType { return c.typ }

// Len returns the number of cells.
func (c Column) Len() int { return len(c.cells) }

// Cell returns the cell at row i.
func (c Column) Cell(i int) Cell { return c.cells[i] }

// MissingCount returns the number of missing cells.
func (c Column) MissingCount() int {
	n := 0
	for _, cell := range c.cells {
		if cell.IsMissing() {
			n++
		}
	}
	return n
}

// Table is an immutable rectangular dataset.
type Table struct {
	columns []Column
	rows    int
}

// NewTable builds a table from columns that all have the same length
// and distinct names.
func NewTable(columns []Column) (*Table, error) {
	t := &Table{columns: make([]Column, len(columns))}
	copy(t.columns, columns)

	seen := make(map[string]struct{}, len(columns))
	for i, col := range t.columns {
		if i == 0 {
			t.rows = col.Len()
		} else if col.Len() != t.rows {
			return nil, fmt.Errorf("%w: column %q has %d cells, expected %d", ErrRaggedColumns, col.name, col.Len(), t.rows)
		}
		if _, dup := seen[col.name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, col.name)
		}
		seen[col.name] = struct{}{}
	}
	return t, nil
}

// Empty returns a zero-row, zero-column table.
func Empty() *Table { return &Table{} }

// NumRows returns R, the number of data rows.
func (t *Table) NumRows() int { return t.rows }

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int { return len(t.columns) }

// Column returns the i-th column.
func (t *Table) Column(i int) Column { return t.columns[i] }

// Columns returns a copy of the column list.
func (t *Table) Columns() []Column {
	cp := make([]Column, len(t.columns))
	copy(cp, t.columns)
	return cp
}

// ColumnNames returns the column names in order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.name
	}
	return names
}

// ColumnByName looks a column up by name.
func (t *Table) ColumnByName(name string) (Column, bool) {
	for _, col := range t.columns {
		if col.name == name {
			return col, true
		}
	}
	return Column{}, false
}

// Row returns the cells of row i across all columns.
func (t *Table) Row(i int) []Cell {
	row := make([]Cell, len(t.columns))
	for c, col := range t.columns {
		row[c] = col.cells[i]
	}
	return row
}
