package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rush-arcade/internal/config"
	"github.com/vovakirdan/rush-arcade/internal/games/rush/replay"
)

var flagForce bool

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recorded run and verify it",
	Long: `Play a replay recorded with 'arcade play --record' back without a
terminal and compare the final world hash with the recorded one.

The replay must be run under the same config it was recorded with: pass
the same --config and --difficulty as the original run. --force plays it
anyway; the result will usually not verify.

Exit status is 1 when the replay cannot be loaded or does not verify.

Examples:
  arcade replay ./runs/last.json
  arcade replay ./runs/hard.json --difficulty hard
  arcade replay ./runs/old.json --force`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagForce, "force", false, "Run even if the config hash does not match")
}

func runReplay(_ *cobra.Command, args []string) {
	rep, err := replay.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadRush(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyRushPreset(&cfg, config.ParsePreset(flagDifficulty))

	res, err := replay.Run(rep, cfg, flagForce)
	if errors.Is(err, replay.ErrConfigMismatch) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Use the --config and --difficulty of the recorded run, or --force.")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printReplayResult(os.Stdout, rep, res)
	if !res.Verified {
		os.Exit(1)
	}
}

// printReplayResult writes a human-readable summary of a playback.
func printReplayResult(w io.Writer, rep replay.File, res replay.Result) {
	h := rep.Header
	rate := h.TickRate
	if rate <= 0 {
		rate = 60
	}

	fmt.Fprintf(w, "Arena:    %s\n", h.Arena)
	fmt.Fprintf(w, "Seed:     %d\n", h.Seed)
	fmt.Fprintf(w, "Frames:   %d\n", len(rep.Frames))
	fmt.Fprintf(w, "Outcome:  %s\n", res.Outcome)
	fmt.Fprintf(w, "Time:     %.1fs (%d ticks)\n", float64(res.Ticks)/float64(rate), res.Ticks)
	fmt.Fprintf(w, "HP:       %d\n", res.HP)
	fmt.Fprintf(w, "Kills:    %d\n", res.Kills)
	fmt.Fprintf(w, "Score:    %d\n", res.Score)
	fmt.Fprintf(w, "Hash:     %016x\n", res.Hash)
	if res.Verified {
		fmt.Fprintln(w, "Verified: yes")
	} else {
		fmt.Fprintf(w, "Verified: no (recorded %016x)\n", h.FinalHash)
	}
}
