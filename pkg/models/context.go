// Package models defines the value types that cross component boundaries:
// gate results, test results, evidence, and execution outcomes. Components
// exchange these instead of Ent rows so the persistence dialect stays an
// infrastructure detail.
package models

// CoreContext carries the identity of the current unit of work. It is derived
// strictly from the active task; no component that needs a project id may be
// invoked without one.
type CoreContext struct {
	ProjectID     string `json:"project_id"`
	AgentID       string `json:"agent_id"`
	Maturity      string `json:"maturity"`
	WorkspacePath string `json:"workspace_path"`
}
