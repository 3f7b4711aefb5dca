// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// RushConfig contains all configuration for the Rush game.
type RushConfig struct {
	World      RushWorld        `yaml:"world"`
	Player     RushPlayer       `yaml:"player"`
	Crescent   RushCrescent     `yaml:"crescent"`
	Arrow      RushArrow        `yaml:"arrow"`
	Projectile RushProjectile   `yaml:"projectile"`
	Damage     RushDamage       `yaml:"damage"`
	Arenas     []RushArena      `yaml:"arenas"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RushWorld defines the playfield in world units.
type RushWorld struct {
	Width  float64 `yaml:"width"`  // Visible x range is [0, Width-1]
	Height float64 `yaml:"height"` // Visible y range is [0, Height-1]
	Scale  float64 `yaml:"scale"`  // World units per screen pixel
}

// RushPlayer defines the player's movement, charge and damage intake.
type RushPlayer struct {
	Speed           float64 `yaml:"speed"`
	Radius          float64 `yaml:"radius"`
	HP              int     `yaml:"hp"`
	ChargeCap       int     `yaml:"charge_cap"`        // Power stops growing here
	ChargeReady     int     `yaml:"charge_ready"`      // Power needed to release into a rush
	RushDecay       int     `yaml:"rush_decay"`        // Power lost per rushing tick
	RushSpeedFactor int     `yaml:"rush_speed_factor"` // speed = (power/2) * factor
	FlashCooldown   int     `yaml:"flash_cooldown"`    // Ticks between screen flashes
	DamageCooldown  int     `yaml:"damage_cooldown"`   // Ticks between damage applications
	FlashTicks      int     `yaml:"flash_ticks"`       // Screen flash fade duration
}

// RushCrescent defines the ranged enemy.
type RushCrescent struct {
	Speed          float64   `yaml:"speed"`
	Radius         float64   `yaml:"radius"`
	GoalForce      float64   `yaml:"goal_force"`
	GoalReach      float64   `yaml:"goal_reach"`
	RepulsionForce float64   `yaml:"repulsion_force"`
	RepulsionReach float64   `yaml:"repulsion_reach"`
	ArrivalRadius  float64   `yaml:"arrival_radius"`
	TelegraphTicks int       `yaml:"telegraph_ticks"`
	AttackTicks    int       `yaml:"attack_ticks"`
	FanDegrees     []float64 `yaml:"fan_degrees"`
	ShotSpeed      float64   `yaml:"shot_speed"`
	MuzzleOffset   float64   `yaml:"muzzle_offset"`
	RingDistance   float64   `yaml:"ring_distance"` // Attack positions are sampled on this ring around the player
	RingCount      int       `yaml:"ring_count"`
	PickAmong      int       `yaml:"pick_among"` // Choose randomly among this many farthest candidates
}

// RushArrow defines the melee roamer.
type RushArrow struct {
	Speed       float64 `yaml:"speed"`
	Radius      float64 `yaml:"radius"`
	StandTicks  int     `yaml:"stand_ticks"`
	RunMin      int     `yaml:"run_min"`    // Shortest run in ticks
	RunSpread   int     `yaml:"run_spread"` // Run length is RunMin + rand(RunSpread)
	TrailLength int     `yaml:"trail_length"`
}

// RushProjectile defines crescent shots.
type RushProjectile struct {
	Radius     float64 `yaml:"radius"`
	SpinPeriod int     `yaml:"spin_period"`
}

// RushDamage defines hp lost per hit type.
type RushDamage struct {
	Shuriken int `yaml:"shuriken"`
	RedArrow int `yaml:"red_arrow"`
}

// RushArena is a named spawn layout. Each arena is playable as its own game id.
type RushArena struct {
	ID      string      `yaml:"id"`
	Title   string      `yaml:"title"`
	Player  RushSpawn   `yaml:"player"`
	Enemies []RushSpawn `yaml:"enemies"`
}

// RushSpawn places one entity.
type RushSpawn struct {
	Kind string  `yaml:"kind,omitempty"` // "crescent" or "arrow" for enemies
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Enemy kinds accepted in arena spawns.
const (
	KindCrescent = "crescent"
	KindArrow    = "arrow"
)

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Arena returns the arena with the given id.
func (c RushConfig) Arena(id string) (RushArena, bool) {
	for _, a := range c.Arenas {
		if a.ID == id {
			return a, true
		}
	}
	return RushArena{}, false
}

// Hash returns a stable hex digest of the config. Replays store it so a
// recording is only re-simulated under the rules it was recorded with.
func (c RushConfig) Hash() string {
	data, err := yaml.Marshal(c)
	if err != nil {
		// RushConfig holds only plain values; Marshal cannot fail on it.
		panic(fmt.Sprintf("config: marshal rush config: %v", err))
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Validate reports the first value that would break the simulation.
func (c RushConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, errors.New("world size must be positive"))
	}
	if c.World.Scale <= 0 {
		errs = append(errs, errors.New("world scale must be positive"))
	}
	if c.Player.HP <= 0 {
		errs = append(errs, errors.New("player hp must be positive"))
	}
	if c.Player.RushDecay <= 0 {
		errs = append(errs, errors.New("player rush_decay must be positive"))
	}
	if c.Player.ChargeReady <= 0 || c.Player.ChargeReady > c.Player.ChargeCap {
		errs = append(errs, errors.New("player charge_ready must be in (0, charge_cap]"))
	}
	if c.Crescent.Speed <= 0 || c.Arrow.Speed <= 0 {
		errs = append(errs, errors.New("enemy speeds must be positive"))
	}
	if c.Crescent.GoalReach <= 0 || c.Crescent.RepulsionReach <= 0 {
		errs = append(errs, errors.New("crescent force reaches must be positive"))
	}
	if c.Crescent.RingCount <= 0 || c.Crescent.PickAmong <= 0 {
		errs = append(errs, errors.New("crescent ring_count and pick_among must be positive"))
	}
	if c.Arrow.RunSpread <= 0 {
		errs = append(errs, errors.New("arrow run_spread must be positive"))
	}
	if c.Projectile.SpinPeriod < 2 {
		errs = append(errs, errors.New("projectile spin_period must be at least 2"))
	}
	if len(c.Arenas) == 0 {
		errs = append(errs, errors.New("at least one arena is required"))
	}
	for _, a := range c.Arenas {
		if a.ID == "" {
			errs = append(errs, errors.New("arena id must not be empty"))
		}
		if len(a.Enemies) == 0 {
			errs = append(errs, fmt.Errorf("arena %q has no enemies", a.ID))
		}
		for _, e := range a.Enemies {
			if e.Kind != KindCrescent && e.Kind != KindArrow {
				errs = append(errs, fmt.Errorf("arena %q: unknown enemy kind %q", a.ID, e.Kind))
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid rush config: %w", err)
	}
	return nil
}
