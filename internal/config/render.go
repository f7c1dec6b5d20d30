package config

import "sync"

const (
	DefaultFPSLimit = 60
	MaxFPSLimit     = 1000
)

// RenderSettings holds settings the frame loop reads while running
type RenderSettings struct {
	mu       sync.RWMutex
	fpsLimit int // 0 means unlimited
}

var globalRenderSettings = &RenderSettings{
	fpsLimit: DefaultFPSLimit,
}

// GetFPSLimit returns the current frame cap, 0 when uncapped
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Negative means uncapped
	if limit < 0 {
		limit = 0
	}
	if limit > MaxFPSLimit {
		limit = MaxFPSLimit
	}

	globalRenderSettings.fpsLimit = limit
}

// Apply publishes the runtime-tunable parts of c
func (c *Config) Apply() {
	SetFPSLimit(c.FPSLimit)
}
