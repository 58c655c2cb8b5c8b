// Package metrics registers the Prometheus collectors for the orchestration
// core. Collectors use the default registry and are exposed by the API
// server's /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LLMCalls counts gateway calls by model and outcome.
	LLMCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "codeframe_llm_calls_total",
		Help: "LLM gateway calls by model and outcome.",
	}, []string{"model", "outcome"})

	// LLMTokens counts tokens by model and direction.
	LLMTokens = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "codeframe_llm_tokens_total",
		Help: "LLM tokens consumed by model and direction (input/output).",
	}, []string{"model", "direction"})

	// LLMCallDuration observes provider call latency.
	LLMCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "codeframe_llm_call_duration_seconds",
		Help:    "LLM provider call duration.",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
	}, []string{"model"})

	// GateDuration observes per-gate run time.
	GateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "codeframe_gate_duration_seconds",
		Help:    "Quality gate run duration by gate.",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
	}, []string{"gate"})

	// GateFailures counts gate failures by gate and severity.
	GateFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "codeframe_gate_failures_total",
		Help: "Quality gate failures by gate and severity.",
	}, []string{"gate", "severity"})

	// TasksClaimed counts queue claims by outcome (claimed/empty/lost).
	TasksClaimed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "codeframe_tasks_claimed_total",
		Help: "Task queue claim attempts by outcome.",
	}, []string{"outcome"})

	// TaskCompletions counts CompleteTask outcomes.
	TaskCompletions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "codeframe_task_completions_total",
		Help: "CompleteTask outcomes (completed/blocked/failed).",
	}, []string{"status"})

	// FlashSaves counts context flash saves.
	FlashSaves = promauto.NewCounter(prometheus.CounterOpts{
		Name: "codeframe_flash_saves_total",
		Help: "Context flash saves performed.",
	})

	// BlockersCreated counts blockers by type.
	BlockersCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "codeframe_blockers_created_total",
		Help: "Blockers created by type (SYNC/ASYNC).",
	}, []string{"type"})
)
