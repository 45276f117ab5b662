// Package arrowtable converts parsed tables into Apache Arrow records.
package arrowtable

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/ukaji3/csvpeek-go/pkg/csvpeek/models"
)

// DataType maps a column type to its Arrow type.
func DataType(t models.ColumnType) arrow.DataType {
	switch t {
	case models.TypeInteger:
		return arrow.PrimitiveTypes.Int64
	case models.TypeFloat:
		return arrow.PrimitiveTypes.Float64
	case models.TypeBoolean:
		return arrow.FixedWidthTypes.Boolean
	case models.TypeMissingOnly:
		return arrow.Null
	default:
		return arrow.BinaryTypes.String
	}
}

// Schema returns the Arrow schema of t. Every field is nullable.
func Schema(t *models.Table) *arrow.Schema {
	fields := make([]arrow.Field, t.NumColumns())
	for i, col := range t.Columns() {
		fields[i] = arrow.Field{Name: col.Name(), Type: DataType(col.Type()), Nullable: true}
	}
	return arrow.NewSchema(fields, nil)
}

// ToRecord copies t into an Arrow record. Missing cells become nulls.
// The caller must Release the record.
func ToRecord(t *models.Table, mem memory.Allocator) (arrow.Record, error) {
	if mem == nil {
		mem = memory.DefaultAllocator
	}

	schema := Schema(t)
	arrs := make([]arrow.Array, 0, t.NumColumns())
	defer func() {
		for _, a := range arrs {
			a.Release()
		}
	}()

	for i, col := range t.Columns() {
		arr, err := buildArray(mem, schema.Field(i).Type, col)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", col.Name(), err)
		}
		arrs = append(arrs, arr)
	}

	return array.NewRecord(schema, arrs, int64(t.NumRows())), nil
}

func buildArray(mem memory.Allocator, dt arrow.DataType, col models.Column) (arrow.Array, error) {
	b := array.NewBuilder(mem, dt)
	defer b.Release()
	b.Reserve(col.Len())

	for r := 0; r < col.Len(); r++ {
		cell := col.Cell(r)
		if cell.IsMissing() {
			b.AppendNull()
			continue
		}
		switch bb := b.(type) {
		case *array.Int64Builder:
			v, _ := cell.Int()
			bb.Append(v)
		case *array.Float64Builder:
			v, _ := cell.Float()
			bb.Append(v)
		case *array.BooleanBuilder:
			v, _ := cell.Bool()
			bb.Append(v)
		case *array.StringBuilder:
			v, _ := cell.Str()
			bb.Append(v)
		default:
			return nil, fmt.Errorf("unexpected %s value in %s column", cell.Type(), dt)
		}
	}
	return b.NewArray(), nil
}
