package models

// TokenUsageData reports token consumption for a single LLM call.
type TokenUsageData struct {
	InputTokens      int     `json:"input_tokens"`
	OutputTokens     int     `json:"output_tokens"`
	EstimatedCostUSD float64 `json:"estimated_cost_usd"`
}

// ExecuteResult is the outcome of WorkerAgent.ExecuteTask. Transient failures
// surface here as status=failed with an error code; they are never raised.
type ExecuteResult struct {
	Status              string          `json:"status"` // completed or failed
	Output              string          `json:"output"`
	Usage               *TokenUsageData `json:"usage,omitempty"`
	Model               string          `json:"model,omitempty"`
	TokenTrackingFailed bool            `json:"token_tracking_failed,omitempty"`
	Error               string          `json:"error,omitempty"`
}

// CompleteStatus is the sum type of CompleteTask outcomes.
type CompleteStatus string

// CompleteTask outcomes.
const (
	// CompleteStatusCompleted: all gates and evidence passed, task committed.
	CompleteStatusCompleted CompleteStatus = "completed"
	// CompleteStatusBlocked: a gate, evidence, or degradation blocker was
	// created; the task remains in_progress.
	CompleteStatusBlocked CompleteStatus = "blocked"
	// CompleteStatusFailed: unrecoverable error; the task is unchanged.
	CompleteStatusFailed CompleteStatus = "failed"
)

// DegradationInfo describes a detected quality drop.
type DegradationInfo struct {
	PeakScore   float64 `json:"peak_score"`
	RecentScore float64 `json:"recent_score"`
	Drop        float64 `json:"drop"`
}

// CompleteResult is the outcome of WorkerAgent.CompleteTask.
type CompleteResult struct {
	Success           bool             `json:"success"`
	Status            CompleteStatus   `json:"status"`
	QualityGateResult *PipelineResult  `json:"quality_gate_result,omitempty"`
	BlockerID         string           `json:"blocker_id,omitempty"`
	Message           string           `json:"message"`
	EvidenceID        string           `json:"evidence_id,omitempty"`
	EvidenceErrors    []string         `json:"evidence_errors,omitempty"`
	Degradation       *DegradationInfo `json:"degradation,omitempty"`
}

// ContextResetRecommendation is the outcome of ShouldRecommendContextReset.
type ContextResetRecommendation struct {
	ShouldReset    bool     `json:"should_reset"`
	Reasons        []string `json:"reasons,omitempty"`
	Recommendation string   `json:"recommendation,omitempty"`
}

// FlashSaveResult summarizes one flash save.
type FlashSaveResult struct {
	CheckpointID  string  `json:"checkpoint_id"`
	TokensBefore  int     `json:"tokens_before"`
	TokensAfter   int     `json:"tokens_after"`
	ReductionPct  float64 `json:"reduction_pct"`
	ItemsArchived int     `json:"items_archived"`
	HotRetained   int     `json:"hot_retained"`
	WarmRetained  int     `json:"warm_retained"`
}

// MaturityAssessment is the outcome of MaturityAssessor.Assess.
type MaturityAssessment struct {
	MaturityLevel string          `json:"maturity_level"`
	MaturityScore float64         `json:"maturity_score"`
	Metrics       MaturityMetrics `json:"metrics"`
	Changed       bool            `json:"changed"`
}

// MaturityMetrics are the weighted inputs to the maturity score.
type MaturityMetrics struct {
	CompletionRate     float64 `json:"completion_rate"`
	AvgTestPassRate    float64 `json:"avg_test_pass_rate"`
	SelfCorrectionRate float64 `json:"self_correction_rate"`
	TotalTasks         int     `json:"total_tasks"`
	CompletedTasks     int     `json:"completed_tasks"`
}
