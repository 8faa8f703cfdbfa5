package report

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto/models"
)

// ManifestHeader is the header of every manifest table.
var ManifestHeader = []string{"Relative Path", "Description", "Author"}

// NormalizeExtensions lowercases extensions and gives each a leading dot.
func NormalizeExtensions(exts []string) map[string]bool {
	out := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out[ext] = true
	}
	return out
}

// BuildManifest lists every file under root whose extension is in
// allowedExtensions, compared case-insensitively with or without a leading
// dot. Description and Author are left blank for manual annotation.
func BuildManifest(root string, allowedExtensions []string) (*models.Table, error) {
	allowed := NormalizeExtensions(allowedExtensions)
	table := models.NewTable(append([]string(nil), ManifestHeader...))
	table.Rows = [][]string{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if d.IsDir() || !isFile(path, d) {
			return nil
		}
		if !allowed[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		table.Rows = append(table.Rows, []string{rel, "", ""})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

// isFile reports whether the entry is a regular file, following symlinks.
func isFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
