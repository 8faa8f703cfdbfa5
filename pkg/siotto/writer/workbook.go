package writer

import (
	"errors"
	"fmt"
	"io"

	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto/models"
	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the name given to the sheet of a single-table workbook.
const DefaultSheetName = "Sheet1"

// ErrEmptyWorkbook indicates a workbook with no sheets to write.
var ErrEmptyWorkbook = errors.New("workbook has no sheets")

// WriteWorkbook writes one worksheet per sheet of wb in OOXML format. Each
// sheet gets its header on row 1 followed by its rows. The extension of
// name, the destination file name, selects the package content type, so a
// .xlsm destination is marked macro-enabled. An empty name writes .xlsx.
func WriteWorkbook(w io.Writer, wb *models.Workbook, name string) error {
	if len(wb.Sheets) == 0 {
		return ErrEmptyWorkbook
	}

	f := excelize.NewFile()
	defer f.Close()
	f.Path = name

	for i, sheet := range wb.Sheets {
		if i == 0 {
			if err := f.SetSheetName(DefaultSheetName, sheet.Name); err != nil {
				return fmt.Errorf("sheet %q: %w", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return fmt.Errorf("sheet %q: %w", sheet.Name, err)
		}
		if err := writeSheet(f, sheet.Name, sheet.Table); err != nil {
			return fmt.Errorf("sheet %q: %w", sheet.Name, err)
		}
	}

	_, err := f.WriteTo(w)
	return err
}

// writeSheet stores every cell as a string so the table reads back unchanged.
func writeSheet(f *excelize.File, sheetName string, t *models.Table) error {
	padded, ok := t.Padded()
	if !ok {
		return fmt.Errorf("row wider than header (%d columns)", t.Width())
	}

	for i, row := range padded.Matrix() {
		if len(row) == 0 {
			continue
		}
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return err
		}
	}
	return nil
}
