package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto"
	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto/models"
	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto/writer"
)

// Options names the report artifacts.
type Options struct {
	// TreeFile is the tree text file name, created inside the folder.
	TreeFile string
	// ManifestFile is the manifest workbook name, created inside the folder.
	ManifestFile string
	// WorksheetTitle names the manifest sheet.
	WorksheetTitle string
}

// DefaultOptions returns the default artifact names.
func DefaultOptions() Options {
	return Options{
		TreeFile:       "folder_tree.txt",
		ManifestFile:   "filtered_files.xlsx",
		WorksheetTitle: "Filtered Files",
	}
}

// Result holds the paths of the generated artifacts.
type Result struct {
	Tree     string
	Manifest string
	Files    int
}

// Generate writes the folder tree and the manifest of files with the given
// extensions into folder. The tree is written first, so it appears in the
// manifest when its extension is allowed.
func Generate(folder string, extensions []string, opts Options) (*Result, error) {
	abs, err := filepath.Abs(folder)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s is not a valid directory", abs)
	}

	res := &Result{
		Tree:     filepath.Join(abs, opts.TreeFile),
		Manifest: filepath.Join(abs, opts.ManifestFile),
	}

	err = writer.WriteFile(res.Tree, func(w io.Writer) error {
		return WriteTree(w, abs)
	})
	if err != nil {
		return nil, fmt.Errorf("write tree: %w", err)
	}

	manifest, err := BuildManifest(abs, extensions)
	if err != nil {
		return nil, fmt.Errorf("build manifest: %w", err)
	}
	res.Files = len(manifest.Rows)

	wb := &models.Workbook{}
	wb.Add(opts.WorksheetTitle, manifest)
	if err := siotto.WriteWorkbook(wb, res.Manifest); err != nil {
		return nil, err
	}

	return res, nil
}
