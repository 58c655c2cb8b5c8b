package models

import "time"

// Severity ranks a gate failure.
type Severity string

// Severity levels, highest first.
const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Icon returns the marker used when rendering a failure in a blocker question.
func (s Severity) Icon() string {
	switch s {
	case SeverityCritical:
		return "🔴"
	case SeverityHigh:
		return "🟠"
	case SeverityMedium:
		return "🟡"
	default:
		return "⚪"
	}
}

// GateName identifies one stage of the quality pipeline.
type GateName string

// Pipeline gates in execution order.
const (
	GateLint          GateName = "lint"
	GateTypecheck     GateName = "typecheck"
	GateSkipDetection GateName = "skip_detection"
	GateTests         GateName = "tests"
	GateCoverage      GateName = "coverage"
	GateReview        GateName = "review"
)

// GateFailure is one failure emitted by a gate.
type GateFailure struct {
	Gate     GateName `json:"gate"`
	Reason   string   `json:"reason"`
	Details  string   `json:"details,omitempty"`
	Severity Severity `json:"severity"`
}

// GateResult is the outcome of a single gate run.
type GateResult struct {
	Gate     GateName      `json:"gate"`
	Passed   bool          `json:"passed"`
	Failures []GateFailure `json:"failures,omitempty"`
	Duration time.Duration `json:"duration"`
}

// PipelineResult aggregates all gate outcomes for one task. The pipeline is
// fail-slow: every gate runs and failures accumulate.
type PipelineResult struct {
	Passed         bool            `json:"passed"`
	Gates          []GateResult    `json:"gates"`
	Failures       []GateFailure   `json:"failures,omitempty"`
	TestResult     *TestResultData `json:"test_result,omitempty"`
	SkipViolations []SkipViolation `json:"skip_violations,omitempty"`
	Coverage       *float64        `json:"coverage,omitempty"`
	Language       string          `json:"language,omitempty"`
	Framework      string          `json:"framework,omitempty"`
}

// SkipViolation is a detected test-skip marker.
type SkipViolation struct {
	File        string `json:"file"`
	Line        int    `json:"line"`
	Marker      string `json:"marker"`
	Level       string `json:"level"` // "error" or "warning"
	Description string `json:"description,omitempty"`
}
