package report_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto"
	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestRenderTree(t *testing.T) {
	root := filepath.Join(t.TempDir(), "project")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs", "img"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))
	touch(t, filepath.Join(root, "src", "main.go"))

	tree, err := report.RenderTree(root)
	require.NoError(t, err)
	assert.Equal(t, "project\n    docs\n        img\n    src\n", tree)
}

func TestRenderTree_MissingRoot(t *testing.T) {
	_, err := report.RenderTree(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestBuildManifest(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.txt"))
	touch(t, filepath.Join(root, "b.csv"))
	touch(t, filepath.Join(root, "c.png"))

	table, err := report.BuildManifest(root, []string{"csv", "png"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Relative Path", "Description", "Author"}, table.Header)
	assert.Equal(t, [][]string{
		{"b.csv", "", ""},
		{"c.png", "", ""},
	}, table.Rows)
}

func TestBuildManifest_NestedAndCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "sub", "Photo.PNG"))
	touch(t, filepath.Join(root, "notes.md"))

	table, err := report.BuildManifest(root, []string{".Png"})
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, filepath.Join("sub", "Photo.PNG"), table.Rows[0][0])
}

func TestNormalizeExtensions(t *testing.T) {
	got := report.NormalizeExtensions([]string{"CSV", ".png", " pdf ", ""})
	assert.Equal(t, map[string]bool{".csv": true, ".png": true, ".pdf": true}, got)
}

func TestGenerate(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "data", "b.csv"))
	touch(t, filepath.Join(root, "c.png"))

	res, err := report.Generate(root, []string{"csv", "png"}, report.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Files)

	tree, err := os.ReadFile(res.Tree)
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(root)+"\n    data\n", string(tree))

	manifest, err := siotto.ReadWorkbook(res.Manifest, siotto.SheetNamed("Filtered Files"))
	require.NoError(t, err)
	assert.Equal(t, report.ManifestHeader, manifest.Header)
	assert.Equal(t, [][]string{
		{"c.png", "", ""},
		{filepath.Join("data", "b.csv"), "", ""},
	}, manifest.Rows)
}

func TestGenerate_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	touch(t, file)

	_, err := report.Generate(file, []string{"txt"}, report.DefaultOptions())
	assert.Error(t, err)
}
