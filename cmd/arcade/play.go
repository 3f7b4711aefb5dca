package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rush-arcade/internal/platform/tui"
	"github.com/vovakirdan/rush-arcade/internal/registry"
)

var (
	flagRecord string
	flagSound  bool
)

var playCmd = &cobra.Command{
	Use:   "play <arena>",
	Short: "Play an arena",
	Long: `Start playing the specified arena.

Controls:
  WASD/Arrows - Move
  Space       - Hold to charge, release to rush
  P/Esc       - Pause
  1/F1        - Toggle force overlay
  R           - Restart (after game over)
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty with heavier hits
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play rush
  arcade play rush --difficulty easy
  arcade play rush_gauntlet --seed 42 --record ./runs/gauntlet.json
  arcade play rush --config ./my-rush.yaml --sound=false`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Save a replay of each finished run to this file")
	playCmd.Flags().BoolVar(&flagSound, "sound", true, "Play sound effects")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown arena %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available arenas.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig(terminalSize())
	session := openLocalSession(flagSound)
	opts := session.opts
	opts.RecordPath = flagRecord

	runErr := tui.Run(game, session.store, cfg, opts)

	// Close before potential exit
	session.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
