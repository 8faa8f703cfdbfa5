// Package config loads settings for the siotto command from defaults, an
// optional YAML file and environment variables, in that order of precedence.
package config

// Config holds all command configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Merge   MergeConfig   `yaml:"merge"`
	Report  ReportConfig  `yaml:"report"`
	Output  OutputConfig  `yaml:"output"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `yaml:"level" env:"SIOTTO_LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `yaml:"format" env:"SIOTTO_LOG_FORMAT" default:"text"`

	// File receives log lines in addition to the console when set
	File string `yaml:"file" env:"SIOTTO_LOG_FILE"`

	// Console writes log lines to stderr (default: true)
	Console bool `yaml:"console" env:"SIOTTO_LOG_CONSOLE" default:"true"`
}

// MergeConfig holds keyed merge settings.
type MergeConfig struct {
	// Key selects the merge key: "filename" or a top-level field name (default: filename)
	Key string `yaml:"key" env:"SIOTTO_MERGE_KEY" default:"filename"`
}

// ReportConfig holds directory report settings.
type ReportConfig struct {
	// TreeFile is the name of the folder tree text file (default: folder_tree.txt)
	TreeFile string `yaml:"treeFile" env:"SIOTTO_REPORT_TREE_FILE" default:"folder_tree.txt"`

	// ManifestFile is the name of the manifest workbook (default: filtered_files.xlsx)
	ManifestFile string `yaml:"manifestFile" env:"SIOTTO_REPORT_MANIFEST_FILE" default:"filtered_files.xlsx"`

	// WorksheetTitle names the manifest sheet (default: Filtered Files)
	WorksheetTitle string `yaml:"worksheetTitle" env:"SIOTTO_REPORT_WORKSHEET_TITLE" default:"Filtered Files"`

	// Extensions is a comma-separated allow-list for the manifest
	Extensions []string `yaml:"extensions" env:"SIOTTO_REPORT_EXTENSIONS"`
}

// OutputConfig holds settings shared by every writer.
type OutputConfig struct {
	// BOM prefixes delimited text output with a UTF-8 byte-order mark (default: true)
	BOM bool `yaml:"bom" env:"SIOTTO_OUTPUT_BOM" default:"true"`
}
