package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a puzzle session.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Moves    int  // Moves up to the current history position
	Pushes   int  // Pushes up to the current history position
	Solved   bool // Every goal holds a box
	AutoPlay bool // Auto-play is stepping through history
	AtEnd    bool // No redo is available
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Solved is true only on the tick the current position became solved.
	Solved bool
}

// Game is the interface the platform drives.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing and rendering.
type Game interface {
	// ID returns the level identifier used for storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset returns the game to its starting position.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
