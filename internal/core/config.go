package core

// RuntimeConfig contains configuration passed to a game at initialization.
// The simulation works in world units; the screen size is only a hint for
// the presentation layer.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested by the platform (default 60)
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

// Mode is the coarse session state seen by the platform.
type Mode int

const (
	ModeTitle     Mode = iota // Waiting for the first Confirm
	ModePlaying               // Live simulation
	ModeInterlude             // Narrative text shown, simulation frozen
	ModeGameOver              // Player health reached zero
	ModeVictory               // Final interlude dismissed
)

// String returns a lowercase name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeTitle:
		return "title"
	case ModePlaying:
		return "playing"
	case ModeInterlude:
		return "interlude"
	case ModeGameOver:
		return "game_over"
	case ModeVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Kills    int  // Non-boss enemies killed
	Chapter  int  // Current narrative chapter
	Mode     Mode // Coarse session state
	GameOver bool // Whether the run has ended in defeat
	Victory  bool // Whether the run has ended in victory
	Paused   bool // Whether the game is paused
}

// Finished reports whether the run has ended either way.
func (s GameState) Finished() bool {
	return s.GameOver || s.Victory
}

// StepResult is returned by Game.Step() after each simulation frame.
type StepResult struct {
	State GameState
}
