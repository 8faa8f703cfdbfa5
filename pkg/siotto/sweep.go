package siotto

import (
	"io/fs"
	"path/filepath"

	"github.com/google/uuid"
)

// FileFailure records a file a batch operation could not process.
type FileFailure struct {
	Path string
	Err  error
}

// SweepReport summarizes one SweepWorkbooks run.
type SweepReport struct {
	// RunID tags every log line of the run.
	RunID string
	// Root is the directory swept.
	Root string
	// Exploded holds one report per workbook that was read.
	Exploded []*ExplodeReport
	// Failures holds workbooks and directories that could not be read.
	Failures []FileFailure
}

// SweepWorkbooks walks root recursively and explodes every workbook found,
// in lexical order. Failures are logged and collected in the report; the
// sweep always runs to completion.
func SweepWorkbooks(root string, opts Options) *SweepReport {
	report := &SweepReport{RunID: uuid.NewString(), Root: root}
	log := opts.logger("siotto.sweep").With("run_id", report.RunID)

	explodeOpts := opts
	explodeOpts.Logger = opts.logger("siotto.explode").With("run_id", report.RunID)

	log.Info("sweep started", "root", root)
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Error("failed to walk", "path", path, "error", err)
			report.Failures = append(report.Failures, FileFailure{Path: path, Err: err})
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if kind, err := Classify(path); err != nil || kind != FormatWorkbook {
			return nil
		}

		exploded, err := Explode(path, explodeOpts)
		if err != nil {
			report.Failures = append(report.Failures, FileFailure{Path: path, Err: err})
			return nil
		}
		report.Exploded = append(report.Exploded, exploded)
		return nil
	})

	log.Info("sweep finished",
		"root", root,
		"workbooks", len(report.Exploded),
		"failures", len(report.Failures),
	)
	return report
}
