package config

// DefaultCheckpoint is the board file written after every position.
const DefaultCheckpoint = "checkpoint.board"

// SessionConfig holds settings for an interactive game.
type SessionConfig struct {
	// Checkpoint is rewritten each time a position is shown; empty disables it
	Checkpoint string

	// LoadFile is a board file to start from instead of the initial position
	LoadFile string

	// Seed for random moves; 0 picks one from the clock
	Seed int64
}

// NewSessionConfig creates a SessionConfig with default values.
func NewSessionConfig() *SessionConfig {
	return &SessionConfig{
		Checkpoint: DefaultCheckpoint,
	}
}

