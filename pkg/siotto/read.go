package siotto

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto/models"
	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto/parser"
	"github.com/xuri/excelize/v2"
)

// ReadDelimited reads a comma-separated file in matrix form. The text is
// decoded as UTF-8 and a leading byte-order mark is ignored.
func ReadDelimited(path string) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewReadError(FormatDelimited, path, err)
	}
	defer f.Close()

	t, err := parser.ReadDelimited(f)
	if err != nil {
		if errors.Is(err, parser.ErrInvalidUTF8) {
			err = &EncodingError{Path: path, Err: err}
		}
		return nil, NewReadError(FormatDelimited, path, err)
	}
	return t, nil
}

// ReadDelimitedRecords reads a comma-separated file in records form. Values
// beyond the header are dropped and missing trailing values are left out of
// the record.
func ReadDelimitedRecords(path string) (models.Records, error) {
	t, err := ReadDelimited(path)
	if err != nil {
		return nil, err
	}
	return t.Records(), nil
}

// ReadWorkbook reads one sheet of a workbook. Cells are read as their
// displayed text and empty cells become "".
func ReadWorkbook(path string, sheet Sheet) (*models.Table, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name, err := resolveSheet(f, sheet)
	if err != nil {
		return nil, NewReadError(FormatWorkbook, path, err)
	}

	t, err := parser.ReadSheet(f, name)
	if err != nil {
		return nil, NewReadError(FormatWorkbook, path, fmt.Errorf("sheet %q: %w", name, err))
	}
	return t, nil
}

// ReadAllSheets reads every sheet of a workbook in workbook order.
func ReadAllSheets(path string) (*models.Workbook, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wb := &models.Workbook{BookName: filepath.Base(path)}
	for _, name := range f.GetSheetList() {
		t, err := parser.ReadSheet(f, name)
		if err != nil {
			return nil, NewReadError(FormatWorkbook, path, fmt.Errorf("sheet %q: %w", name, err))
		}
		wb.Add(name, t)
	}
	return wb, nil
}

// ReadTable reads any tabular source: delimited text, one workbook sheet, or
// a JSON array of flat records.
func ReadTable(path string, sheet Sheet) (*models.Table, error) {
	kind, err := Classify(path)
	if err != nil {
		return nil, err
	}

	switch kind {
	case FormatDelimited:
		return ReadDelimited(path)
	case FormatWorkbook:
		return ReadWorkbook(path, sheet)
	default:
		records, err := ReadRecordsDocument(path)
		if err != nil {
			return nil, err
		}
		return records.Table(), nil
	}
}

// ValidateEncoding reports whether the file at path decodes as strict UTF-8.
// A leading byte-order mark is accepted.
func ValidateEncoding(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	return parser.ValidUTF8(f)
}

func openWorkbook(path string) (*excelize.File, error) {
	if err := requireOOXML(path); err != nil {
		return nil, NewReadError(FormatWorkbook, path, err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewReadError(FormatWorkbook, path, err)
	}
	return f, nil
}

func resolveSheet(f *excelize.File, sheet Sheet) (string, error) {
	names := f.GetSheetList()
	if sheet.name != "" {
		for _, n := range names {
			if n == sheet.name {
				return n, nil
			}
		}
		return "", fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}
	if sheet.index < 0 || sheet.index >= len(names) {
		return "", fmt.Errorf("%w: %s of %d", ErrSheetNotFound, sheet, len(names))
	}
	return names[sheet.index], nil
}
