package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // Simulation ticks per second (default 60)
	Seed      int64 // RNG seed for deterministic gameplay
	HoldTicks int   // Ticks a key stays held after its last press (0 = derive from TickRate)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// EffectiveHoldTicks returns HoldTicks, or a window of ~550ms at TickRate
// when unset. 550ms outlasts the common 500ms key auto-repeat delay.
func (c RuntimeConfig) EffectiveHoldTicks() int {
	if c.HoldTicks > 0 {
		return c.HoldTicks
	}
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return max(1, rate*550/1000)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Won      bool // Whether the run ended in victory
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
