package siotto

import (
	"path/filepath"
	"sort"
	"strings"
)

// FormatKind identifies one of the supported interchange formats.
type FormatKind int

const (
	// FormatUnknown is returned alongside an error for unregistered paths.
	FormatUnknown FormatKind = iota
	// FormatDelimited is comma-separated text.
	FormatDelimited
	// FormatWorkbook is a multi-sheet spreadsheet.
	FormatWorkbook
	// FormatDocument is a JSON document.
	FormatDocument
)

// String returns the format name.
func (k FormatKind) String() string {
	switch k {
	case FormatDelimited:
		return "delimited"
	case FormatWorkbook:
		return "workbook"
	case FormatDocument:
		return "document"
	default:
		return "unknown"
	}
}

// registry maps lowercased extensions, without the dot, to formats.
var registry = map[string]FormatKind{
	"csv":  FormatDelimited,
	"xls":  FormatWorkbook,
	"xlsx": FormatWorkbook,
	"xlsm": FormatWorkbook,
	"xlsb": FormatWorkbook,
	"odf":  FormatWorkbook,
	"ods":  FormatWorkbook,
	"odt":  FormatWorkbook,
	"json": FormatDocument,
}

// ooxml lists the workbook extensions that can be opened and saved. Other
// workbook extensions are recognized but fail with ErrUnsupportedFormat.
var ooxml = map[string]bool{
	"xlsx": true,
	"xlsm": true,
}

// Classify returns the format of path based on its extension. Unregistered
// extensions yield an *UnsupportedFormatError.
func Classify(path string) (FormatKind, error) {
	if kind, ok := registry[extension(path)]; ok {
		return kind, nil
	}
	return FormatUnknown, &UnsupportedFormatError{Path: path}
}

// Extensions returns the sorted extensions registered for kind.
func Extensions(kind FormatKind) []string {
	var exts []string
	for ext, k := range registry {
		if k == kind {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}

// extension returns the lowercased extension of path without the dot.
func extension(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// stem returns the file name of path without directory and extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// requireOOXML rejects workbook extensions that have no reader or writer.
func requireOOXML(path string) error {
	if ooxml[extension(path)] {
		return nil
	}
	return &UnsupportedFormatError{Path: path, Reason: "only .xlsx and .xlsm workbooks can be opened or saved"}
}
