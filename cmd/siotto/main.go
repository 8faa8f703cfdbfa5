// Package main provides the CLI entry point for siotto.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/SiottoTamat/Siotto-Utils/internal/config"
	"github.com/SiottoTamat/Siotto-Utils/internal/logging"
	"github.com/SiottoTamat/Siotto-Utils/pkg/siotto"
)

var version = "dev"

var (
	configPath string
	logLevel   string

	cfg *config.Config
)

func main() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "siotto",
		Short: "Convert, split and merge tabular files",
		Long: `siotto converts tables between CSV, Excel workbooks and JSON,
splits workbooks into one file per sheet, merges keyed JSON documents
and reports on directory contents.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = logging.Close() },
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: siotto.yml in the working directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level")

	rootCmd.AddCommand(
		newConvertCmd(),
		newExplodeCmd(),
		newSweepCmd(),
		newMergeCmd(),
		newReportCmd(),
		newCheckUTF8Cmd(),
		newOpenCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}

	_, err = logging.SetDefault("siotto", logging.Options{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		File:    cfg.Logging.File,
		Console: cfg.Logging.Console,
		Stderr:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	return nil
}

// options returns the library options derived from the loaded config.
func options() siotto.Options {
	bom := cfg.Output.BOM
	return siotto.Options{BOM: &bom}
}
