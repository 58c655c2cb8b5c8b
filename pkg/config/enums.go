package config

// DeploymentMode identifies how the orchestrator is hosted.
type DeploymentMode string

const (
	DeploymentSaaSSandboxed   DeploymentMode = "saas_sandboxed"
	DeploymentSaaSUnsandboxed DeploymentMode = "saas_unsandboxed"
	DeploymentSelfhosted      DeploymentMode = "selfhosted"
	DeploymentDevelopment     DeploymentMode = "development"
)

// IsValid checks if the deployment mode is valid
func (m DeploymentMode) IsValid() bool {
	switch m {
	case DeploymentSaaSSandboxed, DeploymentSaaSUnsandboxed, DeploymentSelfhosted, DeploymentDevelopment:
		return true
	default:
		return false
	}
}

// SecurityEnforcement controls how security findings are acted on.
type SecurityEnforcement string

const (
	EnforcementStrict   SecurityEnforcement = "strict"
	EnforcementWarn     SecurityEnforcement = "warn"
	EnforcementDisabled SecurityEnforcement = "disabled"
)

// IsValid checks if the enforcement level is valid
func (e SecurityEnforcement) IsValid() bool {
	switch e {
	case EnforcementStrict, EnforcementWarn, EnforcementDisabled:
		return true
	default:
		return false
	}
}

// AuditVerbosity controls how much of the access log is persisted.
// High logs all access grants; low logs denials only.
type AuditVerbosity string

const (
	AuditVerbosityHigh AuditVerbosity = "high"
	AuditVerbosityLow  AuditVerbosity = "low"
)

// IsValid checks if the audit verbosity is valid
func (v AuditVerbosity) IsValid() bool {
	switch v {
	case AuditVerbosityHigh, AuditVerbosityLow:
		return true
	default:
		return false
	}
}
