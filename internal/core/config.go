package core

import "time"

// DefaultRefreshInterval is how often frontends re-read game state.
const DefaultRefreshInterval = 200 * time.Millisecond

// RuntimeConfig contains configuration passed to frontends at startup.
type RuntimeConfig struct {
	ScreenW int           // Screen width in characters
	ScreenH int           // Screen height in characters
	Refresh time.Duration // Periodic redraw interval
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Refresh: DefaultRefreshInterval,
	}
}
