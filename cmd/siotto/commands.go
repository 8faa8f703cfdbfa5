package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto"
	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto/report"
)

var (
	sheetName  string
	sheetIndex int
)

// sheetSelector builds the sheet selector from the --sheet and
// --sheet-index flags. A name wins over an index.
func sheetSelector() siotto.Sheet {
	if sheetName != "" {
		return siotto.SheetNamed(sheetName)
	}
	return siotto.SheetAt(sheetIndex)
}

func addSheetFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name to read from a workbook")
	cmd.Flags().IntVar(&sheetIndex, "sheet-index", 0, "Sheet position (0-based) to read from a workbook")
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert SRC DST",
		Short: "Convert a table between CSV, workbook and JSON",
		Long: `convert reads the table in SRC and writes it to DST. Formats are
chosen by file extension. A JSON destination receives an array of records.`,
		Args: cobra.ExactArgs(2),
		RunE: runConvert,
	}
	addSheetFlags(cmd)
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	src, dst := args[0], args[1]

	table, err := siotto.ReadTable(src, sheetSelector())
	if err != nil {
		return err
	}

	kind, err := siotto.Classify(dst)
	if err != nil {
		return err
	}
	if kind == siotto.FormatDocument {
		err = siotto.WriteDocument(table.Records(), dst)
	} else {
		err = siotto.Write(table, dst, options())
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%d rows)\n", src, dst, len(table.Rows))
	return nil
}

func newExplodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explode WORKBOOK",
		Short: "Write every sheet of a workbook as CSV and JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := siotto.Explode(args[0], options())
			if err != nil {
				return err
			}
			printExplode(cmd, rep)
			if len(rep.Failures) > 0 {
				return fmt.Errorf("%d sheet artifacts failed", len(rep.Failures))
			}
			return nil
		},
	}
}

func printExplode(cmd *cobra.Command, rep *siotto.ExplodeReport) {
	out := cmd.OutOrStdout()
	for _, path := range rep.Written {
		fmt.Fprintln(out, path)
	}
	for _, f := range rep.Failures {
		fmt.Fprintf(cmd.ErrOrStderr(), "failed: %s (sheet %q): %v\n", f.Path, f.Sheet, f.Err)
	}
}

func newSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep DIR",
		Short: "Explode every workbook under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep := siotto.SweepWorkbooks(args[0], options())

			written := 0
			for _, ex := range rep.Exploded {
				printExplode(cmd, ex)
				written += len(ex.Written)
			}
			for _, f := range rep.Failures {
				fmt.Fprintf(cmd.ErrOrStderr(), "failed: %s: %v\n", f.Path, f.Err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "run %s: %d workbooks, %d files written, %d failures\n",
				rep.RunID, len(rep.Exploded), written, len(rep.Failures))
			return nil
		},
	}
}

func newMergeCmd() *cobra.Command {
	var key, out string

	cmd := &cobra.Command{
		Use:   "merge DIR",
		Short: "Merge the JSON documents of a directory into one keyed document",
		Long: `merge loads every .json file directly inside DIR and writes one
document mapping each merge key to the file content. The key is the file
stem when --key is "filename", otherwise the named top-level field.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if key == "" {
				key = cfg.Merge.Key
			}
			merged, err := siotto.MergeDocuments(args[0], key, options())
			if err != nil {
				return err
			}
			if out == "" {
				abs, err := filepath.Abs(args[0])
				if err != nil {
					return err
				}
				out = filepath.Base(abs) + "_merged.json"
			}
			if err := siotto.WriteDocument(merged, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d documents -> %s\n", len(merged), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&key, "key", "", `Merge key: "filename" or a top-level field (default from config)`)
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file path (default: <dir>_merged.json)")
	return cmd
}

func newReportCmd() *cobra.Command {
	var (
		exts     []string
		tree     string
		manifest string
		title    string
	)

	cmd := &cobra.Command{
		Use:   "report DIR",
		Short: "Write a folder tree and a file manifest into a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := report.Options{
				TreeFile:       firstNonEmpty(tree, cfg.Report.TreeFile),
				ManifestFile:   firstNonEmpty(manifest, cfg.Report.ManifestFile),
				WorksheetTitle: firstNonEmpty(title, cfg.Report.WorksheetTitle),
			}
			if len(exts) == 0 {
				exts = cfg.Report.Extensions
			}

			res, err := report.Generate(args[0], exts, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "tree: %s\nmanifest: %s (%d files)\n", res.Tree, res.Manifest, res.Files)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&exts, "ext", nil, "File extensions to list, e.g. .pdf,.docx (default from config)")
	cmd.Flags().StringVar(&tree, "tree", "", "Tree file name")
	cmd.Flags().StringVar(&manifest, "manifest", "", "Manifest workbook name")
	cmd.Flags().StringVar(&title, "title", "", "Manifest worksheet title")
	return cmd
}

func newCheckUTF8Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-utf8 FILE...",
		Short: "Report whether files are valid UTF-8",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invalid := 0
			for _, path := range args {
				ok, err := siotto.ValidateEncoding(path)
				switch {
				case err != nil:
					return err
				case ok:
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
				default:
					invalid++
					fmt.Fprintf(cmd.OutOrStdout(), "%s: invalid UTF-8\n", path)
				}
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d files are not valid UTF-8", invalid, len(args))
			}
			return nil
		},
	}
}

func newOpenCmd() *cobra.Command {
	var (
		dir  string
		save bool
	)

	cmd := &cobra.Command{
		Use:   "open [FILE]",
		Short: "Open a table interactively and optionally save a copy",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := newTerminal(cmd.InOrStdin(), cmd.ErrOrStderr())

			var filename string
			if len(args) == 1 {
				filename = args[0]
			}
			table, path := siotto.OpenTable(term, term, dir, filename, sheetSelector())
			if table == nil {
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d columns, %d rows\n", path, len(table.Header), len(table.Rows))
			if len(table.Header) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "columns: %s\n", strings.Join(table.Header, ", "))
			}

			if save {
				siotto.SaveTable(term, term, table, dir, options())
			}
			return nil
		},
	}

	addSheetFlags(cmd)
	cmd.Flags().StringVar(&dir, "dir", ".", "Directory prompts start from")
	cmd.Flags().BoolVar(&save, "save", false, "Prompt for a destination and save the table")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "siotto %s\n", version)
		},
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
