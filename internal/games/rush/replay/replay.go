// Package replay records Rush runs as seed plus per-tick intents and plays
// them back headlessly.
package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/rush-arcade/internal/config"
	"github.com/vovakirdan/rush-arcade/internal/core"
	"github.com/vovakirdan/rush-arcade/internal/games/rush"
	"github.com/vovakirdan/rush-arcade/internal/games/rush/sim"
)

// Version is the replay format version written by this package.
const Version = 1

var (
	// ErrVersion is returned for replays written in another format version.
	ErrVersion = errors.New("replay: unsupported version")
	// ErrConfigMismatch is returned when the replay was recorded with a
	// different config than the one it is played back with.
	ErrConfigMismatch = errors.New("replay: config hash mismatch")
)

// Header identifies the world a replay was recorded in.
type Header struct {
	Version    int    `json:"version"`
	Arena      string `json:"arena"`
	Seed       int64  `json:"seed"`
	TickRate   int    `json:"tick_rate"`
	ConfigHash string `json:"config_hash"`

	// FinalHash is the snapshot hash after the last frame.
	FinalHash uint64 `json:"final_hash"`
}

// File is a complete replay. Frames holds one sim.Intent mask per tick
// and is base64 encoded in JSON.
type File struct {
	Header Header  `json:"header"`
	Frames []uint8 `json:"frames"`
}

// Result is the outcome of playing a replay back.
type Result struct {
	Outcome sim.Outcome
	Ticks   int
	HP      int
	Kills   int
	Score   int
	Hash    uint64

	// Verified reports whether Hash matches the recorded FinalHash.
	Verified bool
}

// FromGame captures the run played so far by g.
func FromGame(g *rush.Game, tickRate int) File {
	s := g.Sim()
	snap := s.Snapshot()
	return File{
		Header: Header{
			Version:    Version,
			Arena:      g.ID(),
			Seed:       s.Seed(),
			TickRate:   tickRate,
			ConfigHash: g.Config().Hash(),
			FinalHash:  snap.Hash(),
		},
		Frames: append([]uint8(nil), g.Intents()...),
	}
}

// Save writes rep to path, replacing any existing file atomically.
func Save(path string, rep File) error {
	if path == "" {
		return errors.New("replay: path is empty")
	}
	if rep.Header.Version != Version {
		return fmt.Errorf("%w: got %d want %d", ErrVersion, rep.Header.Version, Version)
	}
	blob, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("replay: marshal: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("replay: create dir: %w", err)
		}
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, blob, 0o644); err != nil { //#nosec G306 -- replays are not secret
		return fmt.Errorf("replay: write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replay: rename temp file: %w", err)
	}
	return nil
}

// Load reads and decodes a replay file.
func Load(path string) (File, error) {
	if path == "" {
		return File{}, errors.New("replay: path is empty")
	}
	blob, err := os.ReadFile(path) //#nosec G304 -- user-provided replay path
	if err != nil {
		return File{}, fmt.Errorf("replay: read %s: %w", path, err)
	}

	var rep File
	if err := json.Unmarshal(blob, &rep); err != nil {
		return File{}, fmt.Errorf("replay: decode %s: %w", path, err)
	}
	if rep.Header.Version != Version {
		return File{}, fmt.Errorf("%w: got %d want %d", ErrVersion, rep.Header.Version, Version)
	}
	return rep, nil
}

// Run re-simulates rep with cfg. A config whose hash differs from the
// recorded one is rejected unless force is set.
func Run(rep File, cfg config.RushConfig, force bool) (Result, error) {
	if rep.Header.Version != Version {
		return Result{}, fmt.Errorf("%w: got %d want %d", ErrVersion, rep.Header.Version, Version)
	}
	if hash := cfg.Hash(); hash != rep.Header.ConfigHash && !force {
		return Result{}, fmt.Errorf("%w: recorded %.12s, have %.12s", ErrConfigMismatch, rep.Header.ConfigHash, hash)
	}

	g := rush.New(rep.Header.Arena, rep.Header.Arena)
	g.ResetWith(core.RuntimeConfig{TickRate: rep.Header.TickRate, Seed: rep.Header.Seed}, cfg)
	for _, m := range rep.Frames {
		g.StepIntent(sim.IntentFromMask(m))
	}

	s := g.Sim()
	snap := s.Snapshot()
	res := Result{
		Outcome: s.Outcome,
		Ticks:   s.Tick,
		HP:      s.Player.HP,
		Kills:   s.Kills(),
		Hash:    snap.Hash(),
	}
	res.Score = rush.Score(res.Outcome, res.HP, res.Ticks, res.Kills)
	res.Verified = res.Hash == rep.Header.FinalHash
	return res, nil
}
