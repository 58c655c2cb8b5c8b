package config

// SecurityConfig groups deployment-mode and enforcement settings plus the
// sensitive path patterns that force human approval on a task.
type SecurityConfig struct {
	DeploymentMode DeploymentMode      `yaml:"deployment_mode"`
	Enforcement    SecurityEnforcement `yaml:"enforcement"`
	AuditVerbosity AuditVerbosity      `yaml:"audit_verbosity"`

	// SensitivePathPatterns are substrings of touched file paths that set
	// requires_human_approval on the task before gates run.
	SensitivePathPatterns []string `yaml:"sensitive_path_patterns"`
}

// DefaultSecurityConfig returns the built-in security defaults.
func DefaultSecurityConfig() *SecurityConfig {
	return &SecurityConfig{
		DeploymentMode: DeploymentDevelopment,
		Enforcement:    EnforcementWarn,
		AuditVerbosity: AuditVerbosityLow,
		SensitivePathPatterns: []string{
			"auth", "authentication", "password", "payment", "billing",
			"security", "crypto", "secret", "token", "session",
		},
	}
}
