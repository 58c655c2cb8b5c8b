package config

import "time"

// RateLimitConfig controls the per-agent sliding windows for LLM calls and
// blocker creation. Windows are in-memory and do not survive restarts.
type RateLimitConfig struct {
	// AgentCallsPerMinute caps LLM calls per agent over the window.
	AgentCallsPerMinute int `yaml:"agent_calls_per_minute"`

	// BlockerCreationsPerMinute caps blocker creations per agent over the window.
	BlockerCreationsPerMinute int `yaml:"blocker_creations_per_minute"`

	// Window is the sliding-window length.
	Window time.Duration `yaml:"window"`
}

// DefaultRateLimitConfig returns the built-in rate-limit defaults.
func DefaultRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{
		AgentCallsPerMinute:       10,
		BlockerCreationsPerMinute: 10,
		Window:                    time.Minute,
	}
}
