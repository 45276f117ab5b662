package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	table, err := NewTable([]Column{
		NewColumn("id", TypeInteger, []Cell{IntCell(1), IntCell(2)}),
		NewColumn("name", TypeString, []Cell{StringCell("a"), MissingCell()}),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, table.NumRows())
	assert.Equal(t, 2, table.NumColumns())
	assert.Equal(t, []string{"id", "name"}, table.ColumnNames())
	assert.Equal(t, []Cell{IntCell(2), MissingCell()}, table.Row(1))

	col, ok := table.ColumnByName("name")
	require.True(t, ok)
	assert.Equal(t, 1, col.MissingCount())

	_, ok = table.ColumnByName("nope")
	assert.False(t, ok)
}

func TestNewTableRejectsRaggedColumns(t *testing.T) {
	_, err := NewTable([]Column{
		NewColumn("a", TypeInteger, []Cell{IntCell(1)}),
		NewColumn("b", TypeInteger, nil),
	})
	assert.True(t, errors.Is(err, ErrRaggedColumns))
}

func TestNewTableRejectsDuplicateNames(t *testing.T) {
	_, err := NewTable([]Column{
		NewColumn("a", TypeMissingOnly, nil),
		NewColumn("a", TypeMissingOnly, nil),
	})
	assert.True(t, errors.Is(err, ErrDuplicateColumn))
}

func TestTableIsImmutable(t *testing.T) {
	cells := []Cell{IntCell(1)}
	cols := []Column{NewColumn("a", TypeInteger, cells)}
	table, err := NewTable(cols)
	require.NoError(t, err)

	cells[0] = IntCell(99)
	cols[0] = NewColumn("b", TypeString, nil)
	returned := table.Columns()
	returned[0] = NewColumn("c", TypeString, nil)

	assert.Equal(t, "a", table.Column(0).Name())
	assert.Equal(t, int64(1), table.Column(0).Cell(0).Value())
}

func TestEmptyTable(t *testing.T) {
	table := Empty()
	assert.Equal(t, 0, table.NumRows())
	assert.Equal(t, 0, table.NumColumns())
	assert.Empty(t, table.ColumnNames())
}

func TestCellAccessors(t *testing.T) {
	tests := []struct {
		cell     Cell
		typ      ColumnType
		expected interface{}
	}{
		{IntCell(-3), TypeInteger, int64(-3)},
		{FloatCell(1.5), TypeFloat, 1.5},
		{BoolCell(true), TypeBoolean, true},
		{StringCell(""), TypeString, ""},
		{MissingCell(), TypeMissingOnly, nil},
		{Cell{}, TypeMissingOnly, nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.typ, tt.cell.Type())
		assert.Equal(t, tt.expected, tt.cell.Value())
		assert.Equal(t, tt.expected == nil, tt.cell.IsMissing())
	}

	_, ok := IntCell(1).Float()
	assert.False(t, ok)
	s, ok := StringCell("x").Str()
	assert.True(t, ok)
	assert.Equal(t, "x", s)
}

func TestRowLengthMismatchString(t *testing.T) {
	short := RowLengthMismatch{Row: 1, Line: 2, Expected: 3, Got: 2}
	long := RowLengthMismatch{Row: 4, Line: 7, Expected: 3, Got: 5}

	assert.Equal(t, "line 2: row 1 has 2 fields, expected 3 (padded with missing values)", short.String())
	assert.Equal(t, "line 7: row 4 has 5 fields, expected 3 (truncated)", long.String())
}
