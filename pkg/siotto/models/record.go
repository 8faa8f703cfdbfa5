package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is one row keyed by column name. Keys keep insertion order so that a
// record serializes with its columns in header order.
type Record struct {
	keys   []string
	values map[string]string
}

// RecordOf zips keys with values, stopping at the shorter of the two.
func RecordOf(keys, values []string) Record {
	n := min(len(keys), len(values))
	r := Record{keys: make([]string, 0, n), values: make(map[string]string, n)}
	for i := 0; i < n; i++ {
		r.Set(keys[i], values[i])
	}
	return r
}

// Set stores value under key. A key seen before keeps its original position.
func (r *Record) Set(key, value string) {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value stored under key.
func (r Record) Get(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (r Record) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.keys)
}

// Map returns the record as a plain map.
func (r Record) Map() map[string]string {
	out := make(map[string]string, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes the record as an object with keys in insertion order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(&buf, k); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeString(&buf, r.values[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a flat object, keeping key order. Numbers and
// booleans are kept as their literal text and null becomes "".
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("record must be a JSON object, got %v", tok)
	}

	*r = Record{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		value, err := scalarText(raw)
		if err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		r.Set(key, value)
	}
	_, err = dec.Token()
	return err
}

// scalarText renders a JSON scalar as cell text.
func scalarText(raw json.RawMessage) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", err
	}
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case json.Number:
		return x.String(), nil
	case bool:
		if x {
			return "true", nil
		}
		return "false", nil
	default:
		return "", fmt.Errorf("nested value %T is not a cell", v)
	}
}

func writeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode appends a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

// Records is the records form of a table: one Record per row.
type Records []Record

func (Records) tableData() {}

// Columns returns the union of all record keys in first-seen order.
func (rs Records) Columns() []string {
	seen := make(map[string]bool)
	var cols []string
	for _, r := range rs {
		for _, k := range r.keys {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	return cols
}

// Table converts records to matrix form over Columns. Keys missing from a
// record become "".
func (rs Records) Table() *Table {
	cols := rs.Columns()
	rows := make([][]string, len(rs))
	for i, r := range rs {
		row := make([]string, len(cols))
		for j, c := range cols {
			row[j] = r.values[c]
		}
		rows[i] = row
	}
	return &Table{Header: cols, Rows: rows}
}
