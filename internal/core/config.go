package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Tilt samples per second (default 50)
	Seed     int64 // RNG seed for deterministic layouts
	Level    int   // Starting level
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 50,
		Seed:     0, // 0 means use current time in platform layer
		Level:    1,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Cleared  int  // Levels cleared this session
	Level    int  // Current level
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused
	Running  bool // Whether ticks should be scheduled
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
