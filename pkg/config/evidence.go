package config

// EvidenceConfig drives the completion-evidence verification rules.
type EvidenceConfig struct {
	// RequireCoverage makes a missing or sub-threshold coverage value a
	// verification error.
	RequireCoverage bool `yaml:"require_coverage"`

	// MinCoverage is the coverage floor in percent.
	MinCoverage float64 `yaml:"min_coverage"`

	// AllowSkippedTests permits skipped tests in verified evidence.
	AllowSkippedTests bool `yaml:"allow_skipped_tests"`

	// MinPassRate is the test pass-rate floor in percent.
	MinPassRate float64 `yaml:"min_pass_rate"`
}

// DefaultEvidenceConfig returns the built-in evidence defaults.
func DefaultEvidenceConfig() *EvidenceConfig {
	return &EvidenceConfig{
		RequireCoverage:   true,
		MinCoverage:       85.0,
		AllowSkippedTests: false,
		MinPassRate:       100.0,
	}
}
