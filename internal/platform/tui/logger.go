package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// NewLogger returns a logger writing to path. The terminal belongs to the
// game, so without a path everything is discarded. The returned closer
// releases the file.
func NewLogger(path string) (*log.Logger, func() error, error) {
	opts := log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "arcade",
	}
	if path == "" {
		return log.NewWithOptions(io.Discard, opts), func() error { return nil }, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644) //#nosec G304 -- user-provided log path
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return log.NewWithOptions(f, opts), f.Close, nil
}
