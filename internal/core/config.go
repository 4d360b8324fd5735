package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred this tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Event describes something notable that happened during a single Step.
// The platform reacts to events (persisting outcomes, for example) without
// polling game state between ticks.
type Event interface {
	gameEvent()
}

// GameOverEvent is emitted exactly once when a game reaches its terminal state.
type GameOverEvent struct {
	Score int
}

func (GameOverEvent) gameEvent() {}

// MatchEndedEvent is emitted when a self-playing match reaches a terminal
// state. Result is "X", "O", or "draw".
type MatchEndedEvent struct {
	Result        string
	Moves         int
	DurationTicks uint64
}

func (MatchEndedEvent) gameEvent() {}
