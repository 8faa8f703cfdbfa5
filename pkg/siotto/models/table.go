// Package models defines the in-memory shapes shared by readers and writers.
package models

// TableData is the input accepted by writers: either a *Table (header plus
// rows) or Records.
type TableData interface {
	tableData()
}

// Table is the canonical tabular value. Every cell is a string and a missing
// cell is the empty string.
type Table struct {
	// Header holds the column names in order.
	Header []string `json:"header"`
	// Rows holds the data rows, positionally aligned to Header.
	Rows [][]string `json:"rows"`
}

func (*Table) tableData() {}

// NewTable creates a table from a header and rows.
func NewTable(header []string, rows ...[]string) *Table {
	return &Table{Header: header, Rows: rows}
}

// TableFromMatrix treats the first element of matrix as the header and the
// rest as rows. An empty matrix yields an empty table.
func TableFromMatrix(matrix [][]string) *Table {
	if len(matrix) == 0 {
		return &Table{}
	}
	return &Table{Header: matrix[0], Rows: matrix[1:]}
}

// Width returns the number of columns.
func (t *Table) Width() int {
	return len(t.Header)
}

// Matrix returns the header followed by every row.
func (t *Table) Matrix() [][]string {
	out := make([][]string, 0, len(t.Rows)+1)
	out = append(out, t.Header)
	return append(out, t.Rows...)
}

// Records converts rows to records. Each row is zipped with the header up to
// the shorter of the two: surplus values are dropped and missing trailing
// values are left out of the record.
func (t *Table) Records() Records {
	out := make(Records, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, RecordOf(t.Header, row))
	}
	return out
}

// Padded returns a copy of t whose rows all have exactly Width cells.
// Short rows are filled with "". It reports false if a row is wider than the
// header.
func (t *Table) Padded() (*Table, bool) {
	width := t.Width()
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		if len(row) > width {
			return nil, false
		}
		padded := make([]string, width)
		copy(padded, row)
		rows[i] = padded
	}
	return &Table{Header: append([]string(nil), t.Header...), Rows: rows}, true
}
