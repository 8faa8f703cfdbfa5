package parser

import (
	"errors"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrInvalidUTF8 is returned by readers from NewUTF8Reader on the first byte
// that is not valid UTF-8.
var ErrInvalidUTF8 = encoding.ErrInvalidUTF8

// NewUTF8Reader wraps r so that reads fail on invalid UTF-8 and a leading
// byte-order mark is dropped.
func NewUTF8Reader(r io.Reader) io.Reader {
	return transform.NewReader(r, transform.Chain(
		encoding.UTF8Validator,
		unicode.UTF8BOM.NewDecoder(),
	))
}

// ValidUTF8 reports whether everything readable from r is valid UTF-8.
// Errors other than invalid input are returned as is.
func ValidUTF8(r io.Reader) (bool, error) {
	_, err := io.Copy(io.Discard, NewUTF8Reader(r))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrInvalidUTF8):
		return false, nil
	default:
		return false, err
	}
}
