package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/rush-arcade/internal/platform/sound"
	"github.com/vovakirdan/rush-arcade/internal/platform/tui"
	"github.com/vovakirdan/rush-arcade/internal/storage"
)

// localSession bundles the services shared by the interactive commands.
type localSession struct {
	store    *storage.Store
	opts     tui.Options
	closeLog func() error
}

// openLocalSession opens storage, the log file and, if enabled, audio.
// Failures of optional services are reported and the session continues
// without them.
func openLocalSession(withSound bool) *localSession {
	s := &localSession{closeLog: func() error { return nil }}

	logger, closeLog, err := tui.NewLogger(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger, closeLog, _ = tui.NewLogger("")
	}
	s.opts.Logger = logger
	s.closeLog = closeLog

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "error", err)
		store = nil
	}
	s.store = store

	if withSound {
		player := sound.New()
		if err := player.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			logger.Warn("sound disabled", "error", err)
		}
		s.opts.Sound = player
	}
	return s
}

// Close releases every service of the session.
func (s *localSession) Close() {
	s.opts.Sound.Close()
	if s.store != nil {
		s.store.Close()
	}
	s.closeLog() //nolint:errcheck // nothing left to report to
}

// terminalSize returns the size of stdout, or 80x24 when it is not a
// terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
