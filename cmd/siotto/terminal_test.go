package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto"
)

func TestTerminal_PickOpenPath(t *testing.T) {
	var out bytes.Buffer
	term := newTerminal(strings.NewReader("data.csv\n"), &out)

	path, err := term.PickOpenPath([]siotto.FormatKind{siotto.FormatDelimited}, "in")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("in", "data.csv"), path)
	assert.Contains(t, out.String(), "*.csv")
}

func TestTerminal_PickSavePathAddsExtension(t *testing.T) {
	term := newTerminal(strings.NewReader("/tmp/out\n"), &bytes.Buffer{})

	path, err := term.PickSavePath(nil, "ignored", ".xlsx")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out.xlsx", path)
}

func TestTerminal_CancelOnEmptyInput(t *testing.T) {
	term := newTerminal(strings.NewReader(""), &bytes.Buffer{})

	path, err := term.PickOpenPath(nil, ".")
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestTerminal_Notify(t *testing.T) {
	var out bytes.Buffer
	term := newTerminal(strings.NewReader(""), &out)

	term.Notify(siotto.NoticeError, "Save Error", "disk full")
	term.Notify(siotto.NoticeInfo, "Success", "File saved successfully.")
	assert.Equal(t, "error: Save Error: disk full\nSuccess: File saved successfully.\n", out.String())
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", firstNonEmpty("", "b", "c"))
	assert.Empty(t, firstNonEmpty("", ""))
}
