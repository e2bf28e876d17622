package game

import "time"

// DefaultTurnDelay is the pause between explosions.
const DefaultTurnDelay = time.Second

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible games.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// TurnDelay is how long each frame stays on screen.
	TurnDelay time.Duration
}
