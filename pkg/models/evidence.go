package models

import "time"

// QualityMetrics is one append-only record in a project's quality history.
type QualityMetrics struct {
	Timestamp     time.Time `json:"timestamp"`
	ResponseCount int       `json:"response_count"`
	TestPassRate  float64   `json:"test_pass_rate"`
	CoveragePct   float64   `json:"coverage_pct"`
	TestsPassed   int       `json:"tests_passed"`
	TestsFailed   int       `json:"tests_failed"`
	TestsSkipped  int       `json:"tests_skipped"`
	Language      string    `json:"language,omitempty"`
	Framework     string    `json:"framework,omitempty"`
}

// EvidenceData is the value form of a completion-evidence record: what tests
// ran, what coverage was achieved, any skip violations, and the verification
// decision.
type EvidenceData struct {
	TaskID             string          `json:"task_id"`
	AgentID            string          `json:"agent_id"`
	TaskDescription    string          `json:"task_description,omitempty"`
	Verified           bool            `json:"verified"`
	TestResult         *TestResultData `json:"test_result,omitempty"`
	SkipViolations     []SkipViolation `json:"skip_violations,omitempty"`
	Coverage           *float64        `json:"coverage,omitempty"`
	QualityMetrics     *QualityMetrics `json:"quality_metrics,omitempty"`
	VerificationErrors []string        `json:"verification_errors,omitempty"`
	Language           string          `json:"language,omitempty"`
	Framework          string          `json:"framework,omitempty"`
	Timestamp          time.Time       `json:"timestamp"`
}
