package main

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto"
)

// terminal prompts for paths on a line-oriented console. It implements
// siotto.PathPicker and siotto.Notifier.
type terminal struct {
	in  *bufio.Reader
	out io.Writer
}

func newTerminal(in io.Reader, out io.Writer) *terminal {
	return &terminal{in: bufio.NewReader(in), out: out}
}

func (t *terminal) PickOpenPath(kinds []siotto.FormatKind, initialDir string) (string, error) {
	fmt.Fprintf(t.out, "Open file (%s), empty to cancel: ", describeKinds(kinds))
	path, err := t.readLine()
	if err != nil || path == "" {
		return "", err
	}
	return resolve(initialDir, path), nil
}

func (t *terminal) PickSavePath(kinds []siotto.FormatKind, initialDir, defaultExt string) (string, error) {
	fmt.Fprintf(t.out, "Save as (%s), empty to cancel: ", describeKinds(kinds))
	path, err := t.readLine()
	if err != nil || path == "" {
		return "", err
	}
	if filepath.Ext(path) == "" {
		path += defaultExt
	}
	return resolve(initialDir, path), nil
}

func (t *terminal) Notify(kind siotto.NoticeKind, title, message string) {
	prefix := ""
	if kind == siotto.NoticeError {
		prefix = "error: "
	}
	fmt.Fprintf(t.out, "%s%s: %s\n", prefix, title, message)
}

// readLine returns the next trimmed input line. End of input reads as an
// empty line.
func (t *terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func resolve(dir, path string) string {
	if dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

func describeKinds(kinds []siotto.FormatKind) string {
	var exts []string
	for _, k := range kinds {
		for _, ext := range siotto.Extensions(k) {
			exts = append(exts, "*."+ext)
		}
	}
	return strings.Join(exts, " ")
}
