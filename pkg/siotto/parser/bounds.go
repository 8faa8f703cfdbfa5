package parser

// dataBounds finds the last row and the last column holding a non-empty cell.
// Both are -1 when the grid is empty.
func dataBounds(rows [][]string) (lastRow, lastCol int) {
	lastRow, lastCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if rowIdx > lastRow {
					lastRow = rowIdx
				}
				if colIdx > lastCol {
					lastCol = colIdx
				}
			}
		}
	}

	return
}
