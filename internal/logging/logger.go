// Package logging provides named structured loggers built on log/slog.
//
// Loggers are registered once per name. Calling Setup again with a name that
// is already registered returns the existing logger and attaches no further
// output, so repeated setup never duplicates log lines.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Options configures the output of a named logger.
type Options struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string
	// Format is the line format: text or json (default: text)
	Format string
	// File, when set, receives log lines in append mode.
	File string
	// Console sends log lines to Stderr.
	Console bool
	// Stderr overrides the console writer. Defaults to os.Stderr.
	Stderr io.Writer
}

type entry struct {
	logger *slog.Logger
	file   *os.File
}

var (
	mu       sync.Mutex
	registry = map[string]*entry{}
)

// Setup registers a logger under name and returns it. If name is already
// registered the existing logger is returned unchanged.
func Setup(name string, opts Options) (*slog.Logger, error) {
	mu.Lock()
	defer mu.Unlock()

	if e, ok := registry[name]; ok {
		return e.logger, nil
	}

	var writers []io.Writer
	if opts.Console {
		if opts.Stderr != nil {
			writers = append(writers, opts.Stderr)
		} else {
			writers = append(writers, os.Stderr)
		}
	}

	e := &entry{}
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		e.file = f
		writers = append(writers, f)
	}

	var out io.Writer = io.Discard
	if len(writers) > 0 {
		out = io.MultiWriter(writers...)
	}

	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}
	var handler slog.Handler
	if strings.ToLower(opts.Format) == "json" {
		handler = slog.NewJSONHandler(out, handlerOpts)
	} else {
		handler = slog.NewTextHandler(out, handlerOpts)
	}

	e.logger = slog.New(handler).With("logger", name)
	registry[name] = e
	return e.logger, nil
}

// SetDefault registers name like Setup and makes it the process default, so
// that Get falls back to it for unregistered names.
func SetDefault(name string, opts Options) (*slog.Logger, error) {
	logger, err := Setup(name, opts)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return logger, nil
}

// Get returns the logger registered under name, or the process default
// tagged with the name.
func Get(name string) *slog.Logger {
	mu.Lock()
	e, ok := registry[name]
	mu.Unlock()
	if ok {
		return e.logger
	}
	return slog.Default().With("logger", name)
}

// Close releases the log files held by registered loggers and empties the
// registry.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	var firstErr error
	for name, e := range registry {
		if e.file != nil {
			if err := e.file.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		delete(registry, name)
	}
	return firstErr
}

// ParseLevel converts a string log level to slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
