package core

import "time"

// RuntimeConfig contains configuration passed to a front end at start-up.
type RuntimeConfig struct {
	ScreenW       int           // Screen width in characters
	ScreenH       int           // Screen height in characters
	Seed          int64         // RNG seed, 0 means use current time
	ComputerDelay time.Duration // Pause before the computer moves
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:       80,
		ScreenH:       24,
		Seed:          0, // 0 means use current time in platform layer
		ComputerDelay: time.Second,
	}
}

// SeedOrNow returns Seed, or the current time in nanoseconds when Seed is 0.
func (c RuntimeConfig) SeedOrNow() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
