package thumbnail

import (
	"bytes"
	"fmt"
	"image"

	"github.com/xuri/excelize/v2"
)

// spreadsheetRasterizer renders the used range of a workbook's first sheet
// as a bordered text grid. Library: github.com/xuri/excelize/v2.
type spreadsheetRasterizer struct {
	fontSize float64
}

func (r spreadsheetRasterizer) rasterize(data []byte) (image.Image, error) {
	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: open workbook: %v", ErrDecode, err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrDecode)
	}

	// Only the first sheet in document order is ever rendered.
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %v", ErrDecode, sheets[0], err)
	}

	grid, ok := usedRange(rows)
	if !ok {
		return nil, fmt.Errorf("%w: sheet %q has no populated cells", ErrDecode, sheets[0])
	}

	return drawCellGrid(grid, r.fontSize)
}

// usedRange trims rows to the minimal rectangle containing every populated
// cell, not the whole virtual grid. Returns false when no cell has a value.
func usedRange(rows [][]string) ([][]string, bool) {
	minRow, maxRow := -1, -1
	minCol, maxCol := -1, -1
	for i, row := range rows {
		for j, val := range row {
			if val == "" {
				continue
			}
			if minRow == -1 || i < minRow {
				minRow = i
			}
			if i > maxRow {
				maxRow = i
			}
			if minCol == -1 || j < minCol {
				minCol = j
			}
			if j > maxCol {
				maxCol = j
			}
		}
	}
	if minRow == -1 {
		return nil, false
	}

	grid := make([][]string, 0, maxRow-minRow+1)
	for i := minRow; i <= maxRow; i++ {
		row := make([]string, maxCol-minCol+1)
		for j := minCol; j <= maxCol; j++ {
			if i < len(rows) && j < len(rows[i]) {
				row[j-minCol] = rows[i][j]
			}
		}
		grid = append(grid, row)
	}
	return grid, true
}
