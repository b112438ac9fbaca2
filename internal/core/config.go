package core

// RuntimeConfig is handed to a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the summary a game reports to the platform after each step.
type GameState struct {
	Score    int
	Money    int
	Charge   int
	Spaceout bool // Freeze effect active
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State    GameState
	Substeps int // Fixed simulation ticks run during this frame
	Killed   int // Enemies removed during this frame
}
