package siotto_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto"
	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePicker struct {
	open, save string
	err        error
}

func (p fakePicker) PickOpenPath([]siotto.FormatKind, string) (string, error) {
	return p.open, p.err
}

func (p fakePicker) PickSavePath([]siotto.FormatKind, string, string) (string, error) {
	return p.save, p.err
}

type notice struct {
	kind           siotto.NoticeKind
	title, message string
}

type fakeNotifier struct {
	notices []notice
}

func (n *fakeNotifier) Notify(kind siotto.NoticeKind, title, message string) {
	n.notices = append(n.notices, notice{kind, title, message})
}

func TestOpenTable(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "in.csv"), "a\n1\n")
	n := &fakeNotifier{}

	table, got := siotto.OpenTable(fakePicker{open: path}, n, "", "", siotto.Sheet{})
	require.NotNil(t, table)
	assert.Equal(t, path, got)
	assert.Empty(t, n.notices)
}

func TestOpenTable_Cancelled(t *testing.T) {
	n := &fakeNotifier{}

	table, got := siotto.OpenTable(fakePicker{}, n, "", "", siotto.Sheet{})
	assert.Nil(t, table)
	assert.Empty(t, got)
	assert.Empty(t, n.notices)
}

func TestOpenTable_Unsupported(t *testing.T) {
	n := &fakeNotifier{}

	table, _ := siotto.OpenTable(fakePicker{}, n, "", "notes.txt", siotto.Sheet{})
	assert.Nil(t, table)
	require.Len(t, n.notices, 1)
	assert.Equal(t, siotto.NoticeError, n.notices[0].kind)
	assert.Equal(t, "Unsupported File", n.notices[0].title)
}

func TestOpenTable_ReadError(t *testing.T) {
	n := &fakeNotifier{}

	table, _ := siotto.OpenTable(fakePicker{}, n, "", filepath.Join(t.TempDir(), "missing.csv"), siotto.Sheet{})
	assert.Nil(t, table)
	require.Len(t, n.notices, 1)
	assert.Equal(t, "Error", n.notices[0].title)
	assert.Contains(t, n.notices[0].message, "Error reading file:")
}

func TestSaveTable(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.xlsx")
	n := &fakeNotifier{}
	data := models.Records{models.RecordOf([]string{"a"}, []string{"1"})}

	got := siotto.SaveTable(fakePicker{save: dest}, n, data, "", siotto.DefaultOptions())
	assert.Equal(t, dest, got)
	require.Len(t, n.notices, 1)
	assert.Equal(t, notice{siotto.NoticeInfo, "Success", "File saved successfully."}, n.notices[0])

	back, err := siotto.ReadWorkbook(dest, siotto.Sheet{})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1"}}, back.Rows)
}

func TestSaveTable_NoDataOrCancel(t *testing.T) {
	n := &fakeNotifier{}

	assert.Empty(t, siotto.SaveTable(fakePicker{save: "x.csv"}, n, models.Records{}, "", siotto.DefaultOptions()))
	assert.Empty(t, siotto.SaveTable(fakePicker{}, n, models.NewTable([]string{"a"}), "", siotto.DefaultOptions()))
	assert.Empty(t, n.notices)
}

func TestSaveTable_Errors(t *testing.T) {
	n := &fakeNotifier{}
	data := models.NewTable([]string{"a"})

	assert.Empty(t, siotto.SaveTable(fakePicker{err: errors.New("dialog crashed")}, n, data, "", siotto.DefaultOptions()))
	assert.Empty(t, siotto.SaveTable(fakePicker{save: filepath.Join(t.TempDir(), "out.txt")}, n, data, "", siotto.DefaultOptions()))

	require.Len(t, n.notices, 2)
	for _, got := range n.notices {
		assert.Equal(t, siotto.NoticeError, got.kind)
		assert.Equal(t, "Save Error", got.title)
	}
}
