// Package report produces a folder tree text and a filtered file manifest
// for a directory.
package report

import (
	"bufio"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
)

// Indent is written once per directory level in the tree.
const Indent = "    "

// WriteTree writes one line per directory under root in depth-first lexical
// order. Each line is the directory name indented once per level below root;
// the first line is the name of root itself. Subdirectories that cannot be
// read are skipped.
func WriteTree(w io.Writer, root string) error {
	abs, err := filepath.Abs(root)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == abs {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(abs, path)
		if err != nil {
			return err
		}
		depth := 0
		if rel != "." {
			depth = len(strings.Split(rel, string(filepath.Separator)))
		}

		_, err = bw.WriteString(strings.Repeat(Indent, depth) + filepath.Base(path) + "\n")
		return err
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

// RenderTree returns the tree written by WriteTree as a string.
func RenderTree(root string) (string, error) {
	var sb strings.Builder
	if err := WriteTree(&sb, root); err != nil {
		return "", err
	}
	return sb.String(), nil
}
