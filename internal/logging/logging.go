// Package logging builds charmbracelet/log loggers from configuration.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-xenzia/internal/config"
	"github.com/vovakirdan/snake-xenzia/internal/storage"
)

// New creates a logger writing to w at the configured level.
// An unknown level falls back to info.
func New(w io.Writer, cfg config.LogConfig, prefix string) *log.Logger {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// NewFile creates a logger appending to cfg.File, for use while a TUI owns
// the terminal. With no file configured, log output is discarded.
// The returned close function is always non-nil.
func NewFile(cfg config.LogConfig, prefix string) (*log.Logger, func() error, error) {
	noop := func() error { return nil }
	if cfg.File == "" {
		return New(io.Discard, cfg, prefix), noop, nil
	}

	path, err := storage.ExpandHome(cfg.File)
	if err != nil {
		return New(io.Discard, cfg, prefix), noop, fmt.Errorf("logging: cannot expand home directory: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return New(io.Discard, cfg, prefix), noop, fmt.Errorf("logging: cannot create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return New(io.Discard, cfg, prefix), noop, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}
	return New(f, cfg, prefix), f.Close, nil
}
