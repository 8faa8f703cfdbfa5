package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileNames are the configuration files looked up in the working directory
// when no explicit path is given.
var FileNames = []string{"siotto.yml", "siotto.yaml"}

// Load builds the configuration. Defaults are applied first, then the YAML
// file at path (or the first of FileNames found in the working directory when
// path is empty), then environment variables.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if err := loadStruct(reflect.ValueOf(cfg).Elem(), fromDefault); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}

	if err := loadFile(cfg, path); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}

	if err := loadStruct(reflect.ValueOf(cfg).Elem(), fromEnv); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// loadFile overlays YAML settings onto cfg. A missing default file is not an
// error; a missing explicit file is.
func loadFile(cfg *Config, path string) error {
	candidates := FileNames
	if path != "" {
		candidates = []string{path}
	}

	for _, name := range candidates {
		data, err := os.ReadFile(name)
		if errors.Is(err, fs.ErrNotExist) && path == "" {
			continue
		}
		if err != nil {
			return err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		return nil
	}
	return nil
}

func fromDefault(field reflect.StructField) string {
	return field.Tag.Get("default")
}

func fromEnv(field reflect.StructField) string {
	return os.Getenv(field.Tag.Get("env"))
}

// loadStruct recursively populates struct fields carrying an env tag with
// the non-empty values returned by lookup.
func loadStruct(v reflect.Value, lookup func(reflect.StructField) string) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := v.Field(i)

		// Skip unexported fields
		if !fieldVal.CanSet() {
			continue
		}

		if field.Type.Kind() == reflect.Struct {
			if err := loadStruct(fieldVal, lookup); err != nil {
				return err
			}
			continue
		}

		envName := field.Tag.Get("env")
		if envName == "" {
			continue
		}

		value := lookup(field)
		if value == "" {
			continue
		}

		if err := setField(fieldVal, value); err != nil {
			return fmt.Errorf("invalid value for %s=%q: %w", envName, value, err)
		}
	}

	return nil
}

// setField sets a reflect.Value from a string based on its type.
func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean: %w", err)
		}
		field.SetBool(b)

	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type: %s", field.Type().Elem().Kind())
		}
		// Split comma-separated values, trim whitespace
		parts := strings.Split(value, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				result = append(result, p)
			}
		}
		field.Set(reflect.ValueOf(result))

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("SIOTTO_LOG_LEVEL (%q) must be debug, info, warn or error", c.Logging.Level))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("SIOTTO_LOG_FORMAT (%q) must be text or json", c.Logging.Format))
	}

	if c.Merge.Key == "" {
		errs = append(errs, "SIOTTO_MERGE_KEY must not be empty")
	}
	if c.Report.TreeFile == "" {
		errs = append(errs, "SIOTTO_REPORT_TREE_FILE must not be empty")
	}
	if c.Report.ManifestFile == "" {
		errs = append(errs, "SIOTTO_REPORT_MANIFEST_FILE must not be empty")
	}
	if c.Report.WorksheetTitle == "" {
		errs = append(errs, "SIOTTO_REPORT_WORKSHEET_TITLE must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}
