// arcade runs Rush, a top-down action game, in the terminal.
//
// Usage:
//
//	arcade list              - List available arenas
//	arcade play <arena>      - Play an arena
//	arcade menu              - Start menu to pick arenas interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <arena>    - Show high scores and run stats for an arena
//	arcade replay <file>     - Re-simulate a recorded run and verify it
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Load Rush config from a YAML file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write a debug log (the terminal belongs to the game)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rush-arcade/internal/core"
	"github.com/vovakirdan/rush-arcade/internal/games/rush"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagHoldTicks  int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Rush - charge, dash and cut through enemies in your terminal",
	Long: `Rush is a top-down action game for the terminal. Hold Space to charge
a dash, release to rush through Crescents and Arrows, and survive their
shuriken fans and charges.

Available commands:
  list     - Show all arenas
  play     - Play a specific arena directly
  menu     - Interactive arena picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and run stats
  replay   - Verify a recorded run

Examples:
  arcade list
  arcade play rush
  arcade play rush_gauntlet --difficulty hard --record ./runs/last.json
  arcade menu
  arcade serve --ssh :2222
  arcade scores rush
  arcade replay ./runs/last.json`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		rush.SetConfigPath(flagConfig)
		rush.SetDifficultyPreset(flagDifficulty)
	},
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom Rush config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", "", "Write debug log to this file")
	pf.IntVar(&flagHoldTicks, "hold-ticks", 0, "Ticks a key stays held after its last press (0 = auto)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
}

// runtimeConfig builds the runtime config from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		TickRate:  flagFPS,
		Seed:      flagSeed,
		HoldTicks: flagHoldTicks,
	}
}
