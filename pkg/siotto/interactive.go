package siotto

import (
	"fmt"

	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto/models"
)

// NoticeKind is the severity of a user notification.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeError
)

// PathPicker asks the user for a file. An empty path with a nil error means
// the user cancelled.
type PathPicker interface {
	PickOpenPath(kinds []FormatKind, initialDir string) (string, error)
	PickSavePath(kinds []FormatKind, initialDir, defaultExt string) (string, error)
}

// Notifier shows a message to the user without waiting for an answer.
type Notifier interface {
	Notify(kind NoticeKind, title, message string)
}

// tableKinds are the formats offered by OpenTable and SaveTable.
var tableKinds = []FormatKind{FormatWorkbook, FormatDelimited}

// OpenTable loads a table from filename, or from a path picked by the user
// when filename is empty. Errors are reported through notifier and yield a
// nil table; cancellation yields a nil table silently. The path read is
// returned alongside the table.
func OpenTable(picker PathPicker, notifier Notifier, defaultDir, filename string, sheet Sheet) (*models.Table, string) {
	if filename == "" {
		picked, err := picker.PickOpenPath(tableKinds, defaultDir)
		if err != nil {
			notifier.Notify(NoticeError, "Error", fmt.Sprintf("Error reading file: %v", err))
			return nil, ""
		}
		filename = picked
	}
	if filename == "" {
		return nil, ""
	}

	kind, err := Classify(filename)
	if err != nil || kind == FormatDocument {
		notifier.Notify(NoticeError, "Unsupported File", "This program only supports CSV and Excel files.")
		return nil, ""
	}

	t, err := ReadTable(filename, sheet)
	if err != nil {
		notifier.Notify(NoticeError, "Error", fmt.Sprintf("Error reading file: %v", err))
		return nil, ""
	}
	return t, filename
}

// SaveTable asks the user for a destination and writes data there. Empty
// data and cancellation are silent no-ops. It returns the path written, or
// "" when nothing was saved.
func SaveTable(picker PathPicker, notifier Notifier, data models.TableData, defaultDir string, opts Options) string {
	if isEmpty(data) {
		return ""
	}

	dest, err := picker.PickSavePath(tableKinds, defaultDir, ".xlsx")
	if err != nil {
		notifier.Notify(NoticeError, "Save Error", fmt.Sprintf("Failed to save file: %v", err))
		return ""
	}
	if dest == "" {
		return ""
	}

	if err := Write(data, dest, opts); err != nil {
		notifier.Notify(NoticeError, "Save Error", fmt.Sprintf("Failed to save file: %v", err))
		return ""
	}

	notifier.Notify(NoticeInfo, "Success", "File saved successfully.")
	return dest
}

func isEmpty(data models.TableData) bool {
	switch d := data.(type) {
	case nil:
		return true
	case *models.Table:
		return d == nil || (len(d.Header) == 0 && len(d.Rows) == 0)
	case models.Records:
		return len(d) == 0
	}
	return false
}
