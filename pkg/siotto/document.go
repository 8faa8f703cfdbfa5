package siotto

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto/models"
	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto/parser"
	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto/writer"
)

// LoadDocument reads one JSON document. Numbers are kept as json.Number so
// they round-trip without loss.
func LoadDocument(path string) (models.Document, error) {
	doc := models.Document{Path: path, Stem: stem(path)}

	f, err := os.Open(path)
	if err != nil {
		return doc, NewReadError(FormatDocument, path, err)
	}
	defer f.Close()

	content, err := decodeDocument(f)
	if err != nil {
		if errors.Is(err, parser.ErrInvalidUTF8) {
			err = &EncodingError{Path: path, Err: err}
		}
		return doc, NewReadError(FormatDocument, path, err)
	}
	doc.Content = content
	return doc, nil
}

func decodeDocument(r io.Reader) (any, error) {
	dec := json.NewDecoder(parser.NewUTF8Reader(r))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after the JSON value")
	}
	return v, nil
}

// ReadRecordsDocument reads a JSON array of flat objects as records.
func ReadRecordsDocument(path string) (models.Records, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewReadError(FormatDocument, path, err)
	}
	defer f.Close()

	var records models.Records
	if err := json.NewDecoder(parser.NewUTF8Reader(f)).Decode(&records); err != nil {
		return nil, NewReadError(FormatDocument, path, fmt.Errorf("expected an array of flat records: %w", err))
	}
	return records, nil
}

// WriteDocument saves v as JSON with 2-space indentation and literal
// non-ASCII text. The file is replaced only once fully written.
func WriteDocument(v any, dest string) error {
	err := writer.WriteFile(dest, func(w io.Writer) error {
		return writer.WriteDocument(w, v)
	})
	if err != nil {
		return NewWriteError(FormatDocument, dest, err)
	}
	return nil
}
