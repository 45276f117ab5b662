package parser

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/csvpeek-go/pkg/csvpeek/models"
	"github.com/xuri/excelize/v2"
)

// openTestWorkbook saves a workbook with a table starting at B2 and reopens it.
func openTestWorkbook(t *testing.T) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "B2", "Header1")
	f.SetCellValue(sheetName, "C2", "Header2")
	f.SetCellValue(sheetName, "B3", 100)
	f.SetCellValue(sheetName, "C3", 200.5)
	f.SetCellValue(sheetName, "B4", 7)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	f2, err := excelize.OpenFile(tmpFile)
	require.NoError(t, err)
	t.Cleanup(func() { f2.Close() })
	return f2
}

func TestReadSheet(t *testing.T) {
	f := openTestWorkbook(t)

	rows, err := ReadSheet(f, "")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Header1", "Header2"},
		{"100", "200.5"},
		{"7", ""},
	}, rows)
}

func TestReadSheetNotFound(t *testing.T) {
	f := openTestWorkbook(t)

	_, err := ReadSheet(f, "Nope")
	assert.True(t, errors.Is(err, ErrSheetNotFound))
}

func TestParseSheet(t *testing.T) {
	f := openTestWorkbook(t)

	result, err := ParseSheet(f, "Sheet1", DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)

	table := result.Table
	assert.Equal(t, []string{"Header1", "Header2"}, table.ColumnNames())
	assert.Equal(t, 2, table.NumRows())
	assert.Equal(t, models.TypeInteger, table.Column(0).Type())
	assert.Equal(t, models.TypeFloat, table.Column(1).Type())
	assert.True(t, table.Column(1).Cell(1).IsMissing())
}

func TestFindDataBounds(t *testing.T) {
	minRow, maxRow, minCol, maxCol := findDataBounds([][]string{
		{},
		{"", "x"},
		{"", "", "", "y"},
	})
	assert.Equal(t, []int{1, 2, 1, 3}, []int{minRow, maxRow, minCol, maxCol})

	minRow, _, _, _ = findDataBounds([][]string{{"", ""}})
	assert.Equal(t, -1, minRow)
}
