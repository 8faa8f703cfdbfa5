package siotto

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto/models"
)

// KeyFilename selects the file stem as the merge key.
const KeyFilename = "filename"

// MergeDocuments loads every *.json file directly inside dir, dot-files
// included, in listing order, and collects their contents under a derived key.
//
// With keySelector KeyFilename the key is the file stem. Otherwise it is the
// value of the top-level field keySelector; when that field is missing or
// not a scalar the stem is used and a MissingKeyWarning is logged. When two
// files produce the same key the later one wins and the collision is logged.
// Unreadable files are logged and skipped. The returned error is set only
// when dir cannot be listed.
func MergeDocuments(dir, keySelector string, opts Options) (models.MergedDocument, error) {
	log := opts.logger("siotto.merge")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	merged := make(models.MergedDocument)
	sources := make(map[string]string)

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			continue
		}
		if kind, err := Classify(name); err != nil || kind != FormatDocument {
			continue
		}

		path := filepath.Join(dir, name)
		doc, err := LoadDocument(path)
		if err != nil {
			log.Error("failed to load document", "path", path, "error", err)
			continue
		}

		key, ok := mergeKey(doc, keySelector)
		if !ok {
			w := MissingKeyWarning{Key: keySelector, File: name}
			log.Warn(w.String(), "key", w.Key, "file", w.File, "fallback", key)
		}

		if prev, dup := sources[key]; dup {
			log.Warn("duplicate merge key, later file wins", "key", key, "previous", prev, "file", name)
		}
		sources[key] = name
		merged[key] = doc.Content
	}

	log.Info("merged documents", "dir", dir, "key", keySelector, "entries", len(merged))
	return merged, nil
}

// mergeKey derives the key for doc. It reports false when the stem was used
// as a fallback.
func mergeKey(doc models.Document, keySelector string) (string, bool) {
	if keySelector == KeyFilename {
		return doc.Stem, true
	}

	v, ok := doc.Field(keySelector)
	if !ok {
		return doc.Stem, false
	}
	switch x := v.(type) {
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	case bool:
		return fmt.Sprint(x), true
	default:
		return doc.Stem, false
	}
}
