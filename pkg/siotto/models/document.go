package models

// Document is one StructuredDocument loaded from a file.
type Document struct {
	// Path is the file the document was loaded from.
	Path string
	// Stem is the file name without directory and extension.
	Stem string
	// Content is the decoded JSON value (maps, slices, strings, json.Number,
	// bools, nil).
	Content any
}

// Field returns the top-level field named key when Content is an object.
func (d Document) Field(key string) (any, bool) {
	obj, ok := d.Content.(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := obj[key]
	return v, ok
}

// MergedDocument maps a derived key to one document's content.
type MergedDocument map[string]any
