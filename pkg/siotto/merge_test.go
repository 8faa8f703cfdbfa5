package siotto_test

import (
	"path/filepath"
	"testing"

	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto"
	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mergeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.json"), `{"notes":"x"}`)
	writeFile(t, filepath.Join(dir, "b.json"), `{"key":"foo","notes":"y"}`)
	return dir
}

func TestMergeDocuments_ByField(t *testing.T) {
	dir := mergeFixture(t)
	opts, logs := captureOptions()

	merged, err := siotto.MergeDocuments(dir, "key", opts)
	require.NoError(t, err)

	assert.Equal(t, models.MergedDocument{
		"a":   map[string]any{"notes": "x"},
		"foo": map[string]any{"key": "foo", "notes": "y"},
	}, merged)
	assert.Contains(t, logs.String(), `no such key \"key\" in the JSON file \"a.json\"`)
	assert.NotContains(t, logs.String(), `b.json\"`)
}

func TestMergeDocuments_ByFilename(t *testing.T) {
	dir := mergeFixture(t)
	opts, logs := captureOptions()

	merged, err := siotto.MergeDocuments(dir, siotto.KeyFilename, opts)
	require.NoError(t, err)

	assert.Equal(t, models.MergedDocument{
		"a": map[string]any{"notes": "x"},
		"b": map[string]any{"key": "foo", "notes": "y"},
	}, merged)
	assert.NotContains(t, logs.String(), "no such key")
}

func TestMergeDocuments_CollisionLastWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "1.json"), `{"id":"same","v":"first"}`)
	writeFile(t, filepath.Join(dir, "2.json"), `{"id":"same","v":"second"}`)
	opts, logs := captureOptions()

	merged, err := siotto.MergeDocuments(dir, "id", opts)
	require.NoError(t, err)

	require.Len(t, merged, 1)
	assert.Equal(t, map[string]any{"id": "same", "v": "second"}, merged["same"])
	assert.Contains(t, logs.String(), "duplicate merge key")
}

func TestMergeDocuments_SkipsBadAndForeignFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "good.json"), `{"n": 12.50, "tags": ["a"]}`)
	writeFile(t, filepath.Join(dir, "broken.json"), `{"n":`)
	writeFile(t, filepath.Join(dir, "notes.txt"), `{"n": 1}`)
	writeFile(t, filepath.Join(dir, "nested", "deep.json"), `{"n": 2}`)
	opts, logs := captureOptions()

	merged, err := siotto.MergeDocuments(dir, siotto.KeyFilename, opts)
	require.NoError(t, err)

	require.Len(t, merged, 1)
	good, ok := merged["good"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "12.50", good["n"].(interface{ String() string }).String())
	assert.Contains(t, logs.String(), "failed to load document")
}

func TestMergeDocuments_IncludesDotFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".hidden.json"), `{"v":"h"}`)
	writeFile(t, filepath.Join(dir, "shown.json"), `{"v":"s"}`)
	opts, _ := captureOptions()

	merged, err := siotto.MergeDocuments(dir, siotto.KeyFilename, opts)
	require.NoError(t, err)

	assert.Equal(t, models.MergedDocument{
		".hidden": map[string]any{"v": "h"},
		"shown":   map[string]any{"v": "s"},
	}, merged)
}

func TestMergeDocuments_NonStringKey(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "x.json"), `{"id": 7}`)
	writeFile(t, filepath.Join(dir, "y.json"), `{"id": {"nested": true}}`)
	writeFile(t, filepath.Join(dir, "z.json"), `[1, 2]`)
	opts, _ := captureOptions()

	merged, err := siotto.MergeDocuments(dir, "id", opts)
	require.NoError(t, err)

	assert.Contains(t, merged, "7")
	assert.Contains(t, merged, "y")
	assert.Contains(t, merged, "z")
}

func TestMergeDocuments_MissingDir(t *testing.T) {
	_, err := siotto.MergeDocuments(filepath.Join(t.TempDir(), "missing"), "key", siotto.DefaultOptions())
	assert.Error(t, err)
}

func TestWriteDocument_LoadDocument(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "merged.json")
	merged := models.MergedDocument{"k": map[string]any{"città": "Torino"}}

	require.NoError(t, siotto.WriteDocument(merged, dest))

	doc, err := siotto.LoadDocument(dest)
	require.NoError(t, err)
	assert.Equal(t, "merged", doc.Stem)
	assert.Equal(t, map[string]any{"k": map[string]any{"città": "Torino"}}, doc.Content)
}
