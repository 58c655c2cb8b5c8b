// Package config loads and validates the orchestration core configuration.
// Values come from the environment (loaded once per process) with an optional
// codeframe.yaml overlay for the model allowlist, price table, and gate tool
// commands.
package config

import (
	"fmt"
	"sync"
)

// Config is the umbrella configuration object returned by Load() and passed
// to component constructors. Components never read the environment directly.
type Config struct {
	configDir string

	RateLimit *RateLimitConfig
	LLM       *LLMConfig
	Evidence  *EvidenceConfig
	Security  *SecurityConfig
	Gates     *GatesConfig
	Queue     *QueueConfig
	Retention *RetentionConfig
	API       *APIConfig
}

var (
	procMu  sync.Mutex
	procCfg *Config
)

// Process returns the process-wide configuration, loading it on first use.
// Components that cannot take a constructor argument (test helpers, thin
// wrappers) use this; everything else receives the Config explicitly.
func Process() (*Config, error) {
	procMu.Lock()
	defer procMu.Unlock()
	if procCfg != nil {
		return procCfg, nil
	}
	cfg, err := Load("")
	if err != nil {
		return nil, err
	}
	procCfg = cfg
	return procCfg, nil
}

// ResetForTest clears the cached process configuration so tests can vary
// environment variables between cases.
func ResetForTest() {
	procMu.Lock()
	defer procMu.Unlock()
	procCfg = nil
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Validate checks cross-field consistency of the loaded configuration.
func (c *Config) Validate() error {
	if c.RateLimit.AgentCallsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.agent_calls_per_minute must be positive, got %d", c.RateLimit.AgentCallsPerMinute)
	}
	if c.LLM.MaxCostPerTask <= 0 {
		return fmt.Errorf("llm.max_cost_per_task must be positive, got %g", c.LLM.MaxCostPerTask)
	}
	if c.Evidence.MinCoverage < 0 || c.Evidence.MinCoverage > 100 {
		return fmt.Errorf("evidence.min_coverage must be in [0,100], got %g", c.Evidence.MinCoverage)
	}
	if c.Evidence.MinPassRate < 0 || c.Evidence.MinPassRate > 100 {
		return fmt.Errorf("evidence.min_pass_rate must be in [0,100], got %g", c.Evidence.MinPassRate)
	}
	if !c.Security.DeploymentMode.IsValid() {
		return fmt.Errorf("invalid deployment mode %q", c.Security.DeploymentMode)
	}
	if !c.Security.Enforcement.IsValid() {
		return fmt.Errorf("invalid security enforcement %q", c.Security.Enforcement)
	}
	if !c.Security.AuditVerbosity.IsValid() {
		return fmt.Errorf("invalid audit verbosity %q", c.Security.AuditVerbosity)
	}
	if len(c.LLM.AllowedModels) == 0 {
		return fmt.Errorf("llm.allowed_models must not be empty")
	}
	if c.API.ClientRequestsPerSecond <= 0 || c.API.AnonymousRequestsPerSecond <= 0 {
		return fmt.Errorf("api request budgets must be positive")
	}
	return nil
}
