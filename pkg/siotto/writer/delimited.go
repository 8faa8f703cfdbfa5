// Package writer encodes tables and documents and stages them onto disk.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto/models"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DelimitedOptions configures WriteDelimited.
type DelimitedOptions struct {
	// BOM prefixes the output with a UTF-8 byte-order mark so spreadsheet
	// applications detect the encoding.
	BOM bool
}

// WriteDelimited writes the header and rows of t as comma-separated text.
// Short rows are padded with empty cells; a row wider than the header is an
// error.
func WriteDelimited(w io.Writer, t *models.Table, opts DelimitedOptions) error {
	padded, ok := t.Padded()
	if !ok {
		return fmt.Errorf("row wider than header (%d columns)", t.Width())
	}

	var tw *transform.Writer
	if opts.BOM {
		tw = transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
		w = tw
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(padded.Header); err != nil {
		return err
	}
	for _, row := range padded.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	if tw != nil {
		return tw.Close()
	}
	return nil
}
