package config

import "time"

// RetentionConfig controls audit-log retention and cleanup behavior.
type RetentionConfig struct {
	// AuditRetentionDays is how many days to keep audit log rows.
	AuditRetentionDays int `yaml:"audit_retention_days"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		AuditRetentionDays: 90,
		CleanupInterval:    12 * time.Hour,
	}
}
