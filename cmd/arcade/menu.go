package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rush-arcade/internal/platform/tui"
	"github.com/vovakirdan/rush-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with an arena picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select an arena.
After a run ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select arena
  Tab          - Scoreboard
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagSound, "sound", true, "Play sound effects")
}

func runMenu(_ *cobra.Command, _ []string) {
	session := openLocalSession(flagSound)
	defer session.Close()

	cfg := runtimeConfig(terminalSize())

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(session.store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(session.store, cfg)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		if menuResult.GameID == "" {
			return
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed per run unless pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, session.store, cfg, session.opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
