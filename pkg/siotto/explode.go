package siotto

import (
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto/writer"
)

var unsafeSheetChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// SanitizeSheetName makes a sheet name safe for use in a file name.
// Surrounding whitespace is trimmed and every character outside
// [A-Za-z0-9_-] becomes "_". A name made only of replacement characters
// sanitizes to "".
func SanitizeSheetName(name string) string {
	safe := unsafeSheetChars.ReplaceAllString(strings.TrimSpace(name), "_")
	if strings.Trim(safe, "_") == "" {
		return ""
	}
	return safe
}

// SheetFailure records a per-sheet artifact that could not be written.
type SheetFailure struct {
	Sheet string
	Path  string
	Err   error
}

// ExplodeReport lists what Explode produced for one workbook.
type ExplodeReport struct {
	// Source is the workbook path.
	Source string
	// Written holds every artifact written, CSV before JSON for each sheet.
	Written []string
	// Failures holds artifacts that could not be written.
	Failures []SheetFailure
}

// Explode writes every sheet of the workbook at path as
// <stem>_<sheet>.csv and <stem>_<sheet>.json next to the workbook. A sheet
// that fails to write is logged and skipped. The returned error is set only
// when the workbook cannot be read.
func Explode(path string, opts Options) (*ExplodeReport, error) {
	log := opts.logger("siotto.explode")

	wb, err := ReadAllSheets(path)
	if err != nil {
		log.Error("failed to read workbook", "path", path, "error", err)
		return nil, err
	}

	report := &ExplodeReport{Source: path}
	dir := filepath.Dir(path)
	base := stem(path)
	bom := opts.ShouldWriteBOM()

	for i, name := range artifactNames(wb.Names()) {
		sheet := wb.Sheets[i]
		prefix := filepath.Join(dir, fmt.Sprintf("%s_%s", base, name))

		csvPath := prefix + ".csv"
		err := writer.WriteFile(csvPath, func(w io.Writer) error {
			return writer.WriteDelimited(w, sheet.Table, writer.DelimitedOptions{BOM: bom})
		})
		report.record(sheet.Name, csvPath, FormatDelimited, err)

		jsonPath := prefix + ".json"
		err = writer.WriteFile(jsonPath, func(w io.Writer) error {
			return writer.WriteDocument(w, sheet.Table.Records())
		})
		report.record(sheet.Name, jsonPath, FormatDocument, err)
	}

	for _, f := range report.Failures {
		log.Error("failed to write sheet", "sheet", f.Sheet, "path", f.Path, "error", f.Err)
	}
	log.Info("exploded workbook", "path", path, "sheets", len(wb.Sheets), "written", len(report.Written))
	return report, nil
}

func (r *ExplodeReport) record(sheet, path string, kind FormatKind, err error) {
	if err != nil {
		r.Failures = append(r.Failures, SheetFailure{
			Sheet: sheet,
			Path:  path,
			Err:   NewWriteError(kind, path, err),
		})
		return
	}
	r.Written = append(r.Written, path)
}

// artifactNames sanitizes sheet names and keeps them distinct, so every
// sheet gets its own pair of files. An empty result is replaced by
// sheet<position>; repeats get _2, _3, ...
func artifactNames(sheets []string) []string {
	names := make([]string, len(sheets))
	used := make(map[string]bool, len(sheets))
	for i, sheet := range sheets {
		name := SanitizeSheetName(sheet)
		if name == "" {
			name = fmt.Sprintf("sheet%d", i+1)
		}
		if used[name] {
			base := name
			for n := 2; used[name]; n++ {
				name = fmt.Sprintf("%s_%d", base, n)
			}
		}
		used[name] = true
		names[i] = name
	}
	return names
}
