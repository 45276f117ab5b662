package parser

import (
	"fmt"

	"github.com/ukaji3/csvpeek-go/pkg/csvpeek/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheet returns the cell text of one worksheet, restricted to the
// bounding box of its non-empty cells. Every returned row has the same
// length. An empty sheetName selects the first sheet.
func ReadSheet(f *excelize.File, sheetName string) ([][]string, error) {
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrSheetNotFound
		}
		sheetName = sheets[0]
	}
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil, nil
	}

	result := make([][]string, 0, maxRow-minRow+1)
	for rowIdx := minRow; rowIdx <= maxRow; rowIdx++ {
		row := rows[rowIdx]
		rec := make([]string, 0, maxCol-minCol+1)
		for colIdx := minCol; colIdx <= maxCol; colIdx++ {
			v := ""
			if colIdx < len(row) {
				v = row[colIdx]
			}
			rec = append(rec, v)
		}
		result = append(result, rec)
	}
	return result, nil
}

// ParseSheet reads a worksheet and builds a table from it. The first
// non-empty row is the header unless cfg.NoHeader is set.
func ParseSheet(f *excelize.File, sheetName string, cfg Config) (*models.Result, error) {
	rows, err := ReadSheet(f, sheetName)
	if err != nil {
		return nil, err
	}
	return FromRecords(rows, cfg)
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
