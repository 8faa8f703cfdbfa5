package siotto

import (
	"io"
	"path/filepath"

	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto/models"
	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto/writer"
)

// Write saves data to dest in the format chosen by dest's extension. Only
// delimited text and workbook destinations are accepted; a workbook gets a
// single sheet. Records are laid out over the union of their keys in
// first-seen order.
//
// Output is staged in a temporary file next to dest and renamed into place,
// so dest is either fully written or left as it was.
func Write(data models.TableData, dest string, opts Options) error {
	kind, err := Classify(dest)
	if err != nil {
		return err
	}

	table, err := tableOf(data, kind, dest)
	if err != nil {
		return err
	}

	switch kind {
	case FormatDelimited:
		err = writer.WriteFile(dest, func(w io.Writer) error {
			return writer.WriteDelimited(w, table, writer.DelimitedOptions{BOM: opts.ShouldWriteBOM()})
		})
		if err != nil {
			return NewWriteError(kind, dest, err)
		}
		return nil

	case FormatWorkbook:
		wb := &models.Workbook{}
		wb.Add(writer.DefaultSheetName, table)
		return WriteWorkbook(wb, dest)

	default:
		return &UnsupportedFormatError{Path: dest, Reason: "tables are written as delimited text or workbooks"}
	}
}

// WriteWorkbook saves every sheet of wb to dest, one worksheet per table.
func WriteWorkbook(wb *models.Workbook, dest string) error {
	kind, err := Classify(dest)
	if err != nil {
		return err
	}
	if kind != FormatWorkbook {
		return &UnsupportedFormatError{Path: dest, Reason: "not a workbook destination"}
	}
	if err := requireOOXML(dest); err != nil {
		return err
	}

	err = writer.WriteFile(dest, func(w io.Writer) error {
		return writer.WriteWorkbook(w, wb, filepath.Base(dest))
	})
	if err != nil {
		return NewWriteError(FormatWorkbook, dest, err)
	}
	return nil
}

// tableOf coerces either data form to matrix form.
func tableOf(data models.TableData, kind FormatKind, dest string) (*models.Table, error) {
	switch d := data.(type) {
	case *models.Table:
		if d == nil {
			break
		}
		return d, nil
	case models.Records:
		if len(d) == 0 {
			return nil, NewWriteError(kind, dest, ErrNoData)
		}
		return d.Table(), nil
	}
	return nil, &UnsupportedFormatError{Path: dest, Reason: "data is neither records nor rows"}
}
