package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// HoldTicks is how many ticks a key press keeps its action held.
	// Zero lets the platform pick its default.
	HoldTicks int
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer

		HoldTicks: 9,
	}
}

// TickMillis returns the duration of one simulation tick in milliseconds.
func (c RuntimeConfig) TickMillis() float64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return 1000.0 / float64(rate)
}

// Outcome describes how a run ended.
type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeWon  Outcome = "won"
	OutcomeDead Outcome = "dead"
	OutcomeQuit Outcome = "quit"
)

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score
	GameOver bool    // Whether the game has ended
	Paused   bool    // Whether the game is paused
	Outcome  Outcome // Why the game ended, empty while running
}

// RunStats summarizes a finished run for persistence.
type RunStats struct {
	Coins        int
	Kills        int
	RoomsVisited int
	Ticks        uint64
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
