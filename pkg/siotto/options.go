// Package siotto converts tables between delimited text, workbooks and JSON
// documents, fans workbooks out into one file per sheet and merges keyed JSON
// documents.
package siotto

import (
	"fmt"
	"log/slog"

	"github.com/SiottoTamat/Siotto-Utils/internal/logging"
)

// Sheet selects one sheet of a workbook by position or by name. The zero
// value selects the first sheet.
type Sheet struct {
	index int
	name  string
}

// SheetAt selects the sheet at position i (0-based).
func SheetAt(i int) Sheet {
	return Sheet{index: i}
}

// SheetNamed selects the sheet called name.
func SheetNamed(name string) Sheet {
	return Sheet{name: name}
}

// String describes the selector.
func (s Sheet) String() string {
	if s.name != "" {
		return fmt.Sprintf("%q", s.name)
	}
	return fmt.Sprintf("#%d", s.index)
}

// Options configures writers and batch operations.
type Options struct {
	// BOM specifies whether delimited text starts with a UTF-8 byte-order
	// mark. If nil, defaults to true.
	BOM *bool
	// Logger receives diagnostics from batch operations. If nil, the named
	// logger of each component is used.
	Logger *slog.Logger
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldWriteBOM returns whether delimited output starts with a BOM.
func (o Options) ShouldWriteBOM() bool {
	if o.BOM != nil {
		return *o.BOM
	}
	return true
}

// logger returns the configured logger or the one registered as name.
func (o Options) logger(name string) *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logging.Get(name)
}
