package models

// Sheet is one named sheet of a workbook.
type Sheet struct {
	// Name is the sheet name as stored in the workbook. It may contain
	// characters that are not safe in file names.
	Name string
	// Table is the sheet content.
	Table *Table
}

// Workbook is an ordered collection of named sheets.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string
	// Sheets holds the sheets in workbook order.
	Sheets []Sheet
}

// Add appends a sheet, replacing an existing sheet with the same name.
func (w *Workbook) Add(name string, t *Table) {
	for i := range w.Sheets {
		if w.Sheets[i].Name == name {
			w.Sheets[i].Table = t
			return
		}
	}
	w.Sheets = append(w.Sheets, Sheet{Name: name, Table: t})
}

// Sheet returns the table stored under name.
func (w *Workbook) Sheet(name string) (*Table, bool) {
	for _, s := range w.Sheets {
		if s.Name == name {
			return s.Table, true
		}
	}
	return nil, false
}

// Names returns the sheet names in order.
func (w *Workbook) Names() []string {
	names := make([]string, len(w.Sheets))
	for i, s := range w.Sheets {
		names[i] = s.Name
	}
	return names
}
