package writer

import (
	"encoding/json"
	"io"
)

// Indent is the indentation used for every JSON document written.
const Indent = "  "

// WriteDocument encodes v as indented JSON. Non-ASCII text and the
// characters <, > and & are written literally.
func WriteDocument(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", Indent)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
