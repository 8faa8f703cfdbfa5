package parser

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto/models"
)

// ErrNoHeader indicates delimited input with no content at all.
var ErrNoHeader = errors.New("missing header row")

// ReadDelimited parses comma-separated text. The first line is the header and
// every following line is one row, kept exactly as parsed: rows may be
// shorter or longer than the header. A quote inside an unquoted field is
// kept as text. Blank lines are skipped, so input made only of line breaks
// yields an empty table, while input with no bytes fails with ErrNoHeader.
func ReadDelimited(r io.Reader) (*models.Table, error) {
	br := bufio.NewReader(NewUTF8Reader(r))
	if _, err := br.Peek(1); err == io.EOF {
		return nil, ErrNoHeader
	} else if err != nil {
		return nil, err
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return &models.Table{Header: []string{}, Rows: [][]string{}}, nil
	}
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(rows)+2, err)
		}
		rows = append(rows, row)
	}

	return &models.Table{Header: header, Rows: rows}, nil
}
