// Package models defines data structures for parsed tabular data.
package models

// ColumnType is the inferred type tag of a column.
type ColumnType string

const (
	// TypeInteger marks a column whose values all fit a signed 64-bit integer.
	TypeInteger ColumnType = "integer"
	// TypeFloat marks a column of decimal numbers.
	TypeFloat ColumnType = "float"
	// TypeBoolean marks a column of true/false literals.
	TypeBoolean ColumnType = "boolean"
	// TypeString is the fallback type.
	TypeString ColumnType = "string"
	// TypeMissingOnly marks a column without a single non-missing value.
	TypeMissingOnly ColumnType = "missing-only"
)

// Cell is one typed value, or the missing marker, at a row/column position.
// The zero Cell is missing.
type Cell struct {
	typ ColumnType
	i   int64
	f   float64
	b   bool
	s   string
}

// MissingCell returns the missing marker.
func MissingCell() Cell { return Cell{} }

// IntCell returns an integer cell.
func IntCell(v int64) Cell { return Cell{typ: TypeInteger, i: v} }

// FloatCell returns a float cell.
func FloatCell(v float64) Cell { return Cell{typ: TypeFloat, f: v} }

// BoolCell returns a boolean cell.
func BoolCell(v bool) Cell { return Cell{typ: TypeBoolean, b: v} }

// StringCell returns a string cell holding s verbatim.
func StringCell(s string) Cell { return Cell{typ: TypeString, s: s} }

// IsMissing reports whether the cell carries no value.
func (c Cell) IsMissing() bool { return c.typ == "" }

// Type returns the cell's type, or TypeMissingOnly for a missing cell.
func (c Cell) Type() ColumnType {
	if c.IsMissing() {
		return TypeMissingOnly
	}
	return c.typ
}

// Int returns the integer value and whether the cell holds one.
func (c Cell) Int() (int64, bool) { return c.i, c.typ == TypeInteger }

// Float returns the float value and whether the cell holds one.
func (c Cell) Float() (float64, bool) { return c.f, c.typ == TypeFloat }

// Bool returns the boolean value and whether the cell holds one.
func (c Cell) Bool() (bool, bool) { return c.b, c.typ == TypeBoolean }

// Str returns the string value and whether the cell holds one.
func (c Cell) Str() (string, bool) { return c.s, c.typ == TypeString }

// Value returns the cell value as int64, float64, bool or string,
// or nil for a missing cell.
func (c Cell) Value() interface{} {
	switch c.typ {
	case TypeInteger:
		return c.i
	case TypeFloat:
		return c.f
	case TypeBoolean:
		return c.b
	case TypeString:
		return c.s
	default:
		return nil
	}
}
