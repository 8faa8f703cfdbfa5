// Package parser reads delimited text and workbook sheets into models.Table.
package parser

import (
	"fmt"
	"strconv"

	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheet reads one sheet as a table. The first row is the header and every
// cell is taken as its displayed text, so numbers and dates keep the format
// shown in the workbook.
func ReadSheet(f *excelize.File, sheetName string) (*models.Table, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return tableFromGrid(rows), nil
}

// tableFromGrid turns a ragged grid into a rectangular table with unique
// column names.
func tableFromGrid(rows [][]string) *models.Table {
	lastRow, lastCol := dataBounds(rows)
	if lastRow < 0 {
		return &models.Table{Header: []string{}, Rows: [][]string{}}
	}
	rows = rows[:lastRow+1]
	width := lastCol + 1

	var header []string
	if len(rows) > 0 {
		header = rows[0]
	}
	header = normalizeHeader(header, width)

	body := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cells := make([]string, width)
		copy(cells, row)
		body = append(body, cells)
	}

	return &models.Table{Header: header, Rows: body}
}

// normalizeHeader pads the header to width and makes every name unique.
// Blank names become "Unnamed: <index>" and repeats get ".1", ".2", ...
func normalizeHeader(raw []string, width int) []string {
	header := make([]string, width)
	used := make(map[string]bool, width)
	repeats := make(map[string]int)
	for i := 0; i < width; i++ {
		name := ""
		if i < len(raw) {
			name = raw[i]
		}
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		if used[name] {
			base := name
			for used[name] {
				repeats[base]++
				name = fmt.Sprintf("%s.%d", base, repeats[base])
			}
		}
		used[name] = true
		header[i] = name
	}
	return header
}
