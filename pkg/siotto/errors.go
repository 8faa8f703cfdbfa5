package siotto

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat indicates a path whose extension is not registered,
// a format that cannot serve the requested operation, or data that is
// neither records nor rows.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ErrInvalidEncoding indicates input that is not valid UTF-8.
var ErrInvalidEncoding = errors.New("invalid UTF-8")

// ErrSheetNotFound indicates a sheet selector that matches no sheet.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrNoData indicates an empty records value handed to a writer.
var ErrNoData = errors.New("no data to write")

// EncodingError reports a file that failed strict UTF-8 decoding.
type EncodingError struct {
	Path string
	Err  error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s is not valid UTF-8: %v", e.Path, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// Is matches ErrInvalidEncoding.
func (e *EncodingError) Is(target error) bool {
	return target == ErrInvalidEncoding
}

// ReadError represents a failure to load a file.
type ReadError struct {
	Format FormatKind
	Path   string
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s file %s: %v", e.Format, e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// NewReadError creates a new ReadError.
func NewReadError(format FormatKind, path string, err error) *ReadError {
	return &ReadError{
		Format: format,
		Path:   path,
		Err:    err,
	}
}

// WriteError represents a failure to save a file.
type WriteError struct {
	Format FormatKind
	Path   string
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s file %s: %v", e.Format, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// NewWriteError creates a new WriteError.
func NewWriteError(format FormatKind, path string, err error) *WriteError {
	return &WriteError{
		Format: format,
		Path:   path,
		Err:    err,
	}
}

// UnsupportedFormatError reports a path or a value the registry cannot
// handle. It matches ErrUnsupportedFormat.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("unsupported format: %s", e.Path)
	}
	return fmt.Sprintf("unsupported format: %s: %s", e.Path, e.Reason)
}

// Is matches ErrUnsupportedFormat.
func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// MissingKeyWarning is logged when a merge key field is absent from a
// document. It is never returned as an error.
type MissingKeyWarning struct {
	Key  string
	File string
}

func (w MissingKeyWarning) String() string {
	return fmt.Sprintf("no such key %q in the JSON file %q", w.Key, w.File)
}
