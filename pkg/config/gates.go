package config

import "time"

// GateToolConfig describes one subprocess tool strategy: the command to run
// and its hard timeout. The parser is selected by gate and language in code.
type GateToolConfig struct {
	Command []string      `yaml:"command"`
	Timeout time.Duration `yaml:"timeout"`
}

// GatesConfig controls the quality-gate pipeline.
type GatesConfig struct {
	// SkipDetectionEnabled toggles the skip-detection gate. When disabled
	// the gate reports passed with no failures.
	SkipDetectionEnabled bool `yaml:"skip_detection_enabled"`

	// CoverageThreshold is the coverage gate floor in percent.
	CoverageThreshold float64 `yaml:"coverage_threshold"`

	// Tools maps "<language>.<gate>" (e.g. "python.lint") to a tool
	// strategy, overriding the builtins.
	Tools map[string]GateToolConfig `yaml:"tools"`
}

// Subprocess timeout defaults per gate.
const (
	DefaultLintTimeout      = 60 * time.Second
	DefaultTypecheckTimeout = 120 * time.Second
	DefaultTestTimeout      = 300 * time.Second
	DefaultCoverageTimeout  = 300 * time.Second
)

// DefaultGatesConfig returns the built-in gate defaults.
func DefaultGatesConfig() *GatesConfig {
	return &GatesConfig{
		SkipDetectionEnabled: true,
		CoverageThreshold:    85.0,
		Tools: map[string]GateToolConfig{
			"python.lint":      {Command: []string{"ruff", "check", "."}, Timeout: DefaultLintTimeout},
			"python.typecheck": {Command: []string{"mypy", "."}, Timeout: DefaultTypecheckTimeout},
			"python.test":      {Command: []string{"pytest", "--tb=short", "-q"}, Timeout: DefaultTestTimeout},
			"python.coverage":  {Command: []string{"pytest", "--cov", "--cov-report=term", "-q"}, Timeout: DefaultCoverageTimeout},
			"js.lint":          {Command: []string{"npx", "eslint", "."}, Timeout: DefaultLintTimeout},
			"js.typecheck":     {Command: []string{"npx", "tsc", "--noEmit"}, Timeout: DefaultTypecheckTimeout},
			"js.test":          {Command: []string{"npx", "jest", "--ci"}, Timeout: DefaultTestTimeout},
			"js.coverage":      {Command: []string{"npx", "jest", "--ci", "--coverage"}, Timeout: DefaultCoverageTimeout},
			"go.lint":          {Command: []string{"golangci-lint", "run", "./..."}, Timeout: DefaultLintTimeout},
			"go.typecheck":     {Command: []string{"go", "vet", "./..."}, Timeout: DefaultTypecheckTimeout},
			"go.test":          {Command: []string{"go", "test", "./..."}, Timeout: DefaultTestTimeout},
			"go.coverage":      {Command: []string{"go", "test", "-cover", "./..."}, Timeout: DefaultCoverageTimeout},
		},
	}
}
