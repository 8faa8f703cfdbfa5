package siotto_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeFile creates path with content, making parent directories.
func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// writeWorkbook saves a workbook whose sheets hold the given grids, in order.
func writeWorkbook(t *testing.T, path string, names []string, grids map[string][][]string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range names {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for r, row := range grids[name] {
			for c, v := range row {
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				require.NoError(t, err)
				require.NoError(t, f.SetCellValue(name, cell, v))
			}
		}
	}

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, f.SaveAs(path))
	return path
}

// captureOptions returns options logging into a buffer.
func captureOptions() (siotto.Options, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return siotto.Options{Logger: logger}, &buf
}
