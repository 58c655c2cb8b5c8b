package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/codeframe-hq/codeframe/pkg/config"
	"github.com/codeframe-hq/codeframe/pkg/metrics"
	"github.com/codeframe-hq/codeframe/pkg/tokens"
)

// AuditSink receives gateway audit events. Audit failures never block the
// call; implementations log and swallow their own errors.
type AuditSink interface {
	Audit(ctx context.Context, eventType, resourceType, resourceID string, metadata map[string]interface{})
}

// UsageRecord is the per-call token usage handed to the usage sink.
type UsageRecord struct {
	TaskID           string
	AgentID          string
	ProjectID        string
	Model            string
	InputTokens      int
	OutputTokens     int
	EstimatedCostUSD float64
	CallType         string
}

// UsageSink persists per-call token usage. A sink failure never fails the
// call; the gateway flags it on the result instead.
type UsageSink interface {
	RecordUsage(ctx context.Context, u UsageRecord) error
}

// Retry policy: up to 3 attempts with exponential backoff (2s, 4s) capped
// at 10s. Only rate-limit, connection, and timeout classes retry.
const (
	maxAttempts    = 3
	baseBackoff    = 2 * time.Second
	maxBackoff     = 10 * time.Second
	baseTimeout    = 30 * time.Second
	timeoutPerKTok = 15 * time.Second
)

// CallInput identifies one gateway call.
type CallInput struct {
	AgentID   string
	TaskID    string
	ProjectID string
	Model     string
	System    string
	Messages  []Message
	MaxTokens int
	CallType  string
}

// CallResult is a successful gateway call.
type CallResult struct {
	Content          string
	InputTokens      int
	OutputTokens     int
	Model            string
	EstimatedCostUSD float64
	Duration         time.Duration

	// UsageTrackingFailed is set when the usage sink rejected the record;
	// the call itself still succeeded.
	UsageTrackingFailed bool
}

// Gateway wraps the provider with rate limiting, the cost guardrail, input
// sanitization, and retrying timed calls. One instance serves all agents;
// rate windows are per agent and in-memory only.
type Gateway struct {
	provider Provider
	cfg      *config.LLMConfig
	rate     *config.RateLimitConfig
	counter  *tokens.Counter
	audit    AuditSink
	usage    UsageSink

	windows *slidingWindows

	// Injectable for tests
	now   func() time.Time
	sleep func(time.Duration)
}

// NewGateway creates a gateway. audit and usage may be nil (events are then
// only logged).
func NewGateway(provider Provider, cfg *config.LLMConfig, rate *config.RateLimitConfig, counter *tokens.Counter, audit AuditSink, usage UsageSink) *Gateway {
	return &Gateway{
		provider: provider,
		cfg:      cfg,
		rate:     rate,
		counter:  counter,
		audit:    audit,
		usage:    usage,
		windows:  newSlidingWindows(rate.Window),
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// Timeout returns the call timeout for a given output budget:
// 30s base plus 15s per 1000 max output tokens.
func Timeout(maxTokens int) time.Duration {
	return baseTimeout + time.Duration(maxTokens/1000)*timeoutPerKTok
}

// Call performs one rate-limited, cost-guarded, retried provider call.
// Validation, credential, rate-limit, and cost refusals happen before any
// provider traffic. Retries cover rate-limit, connection, and timeout
// classes only.
func (g *Gateway) Call(ctx context.Context, in CallInput) (*CallResult, error) {
	if !g.cfg.ModelAllowed(in.Model) {
		return nil, NewProviderError(ErrorClassValidation,
			fmt.Errorf("model %q is not on the allowlist", in.Model))
	}
	if in.MaxTokens <= 0 {
		return nil, NewProviderError(ErrorClassValidation,
			fmt.Errorf("max_tokens must be positive, got %d", in.MaxTokens))
	}

	// Sanitize user-derived content. Injection detections are logged inside
	// Sanitize and carried to the audit trail; they do not block.
	var detected []string
	sanitized := make([]Message, len(in.Messages))
	for i, m := range in.Messages {
		content, phrases := Sanitize(m.Content)
		sanitized[i] = Message{Role: m.Role, Content: content}
		detected = append(detected, phrases...)
	}

	// Rate limit: fail fast, never enqueue. No provider call is issued while
	// the window already holds the full quota.
	if !g.windows.allow(in.AgentID, g.rate.AgentCallsPerMinute, g.now()) {
		metrics.LLMCalls.WithLabelValues(in.Model, "rate_limited").Inc()
		return nil, &GatewayError{
			Code:    CodeAgentRateLimitExceeded,
			Message: fmt.Sprintf("agent %s exceeded %d calls per %s", in.AgentID, g.rate.AgentCallsPerMinute, g.rate.Window),
		}
	}

	// Cost guardrail on the estimate: actual input tokens aren't known until
	// the provider answers, so the encoder estimate plus the full output
	// budget bounds the worst case.
	texts := make([]string, 0, len(sanitized)+1)
	texts = append(texts, in.System)
	for _, m := range sanitized {
		texts = append(texts, m.Content)
	}
	inputEstimate := g.counter.CountAll(texts)
	price := g.cfg.PriceFor(in.Model)
	estimatedCost := float64(inputEstimate)/1e6*price.InputPerMTok +
		float64(in.MaxTokens)/1e6*price.OutputPerMTok
	if estimatedCost > g.cfg.MaxCostPerTask {
		metrics.LLMCalls.WithLabelValues(in.Model, "cost_limited").Inc()
		return nil, &GatewayError{
			Code:    CodeCostLimitExceeded,
			Message: fmt.Sprintf("estimated cost $%.4f exceeds cap $%.2f", estimatedCost, g.cfg.MaxCostPerTask),
		}
	}

	g.windows.record(in.AgentID, g.now())

	timeout := Timeout(in.MaxTokens)
	g.auditEvent(ctx, "llm.call.started", in, map[string]interface{}{
		"model":              in.Model,
		"input_estimate":     inputEstimate,
		"max_output_tokens":  in.MaxTokens,
		"estimated_cost_usd": estimatedCost,
		"timeout_seconds":    timeout.Seconds(),
		"injection_phrases":  detected,
	})

	req := Request{Model: in.Model, System: in.System, Messages: sanitized, MaxTokens: in.MaxTokens}
	start := g.now()

	var resp *Response
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, timeout)
		resp, err = g.provider.Call(callCtx, req)
		cancel()
		if err == nil {
			break
		}

		class := ClassOf(err)
		if !class.Retryable() || attempt == maxAttempts {
			break
		}

		delay := backoffDelay(attempt)
		slog.Warn("LLM call failed, retrying",
			"agent_id", in.AgentID,
			"model", in.Model,
			"attempt", attempt,
			"class", class,
			"backoff", delay,
			"error", err)
		g.sleep(delay)
	}

	duration := g.now().Sub(start)
	metrics.LLMCallDuration.WithLabelValues(in.Model).Observe(duration.Seconds())

	if err != nil {
		metrics.LLMCalls.WithLabelValues(in.Model, "failed").Inc()
		g.auditEvent(ctx, "llm.call.failed", in, map[string]interface{}{
			"model":       in.Model,
			"error_class": string(ClassOf(err)),
			"duration_ms": duration.Milliseconds(),
		})
		return nil, fmt.Errorf("llm call failed after retries: %w", err)
	}

	actualCost := float64(resp.InputTokens)/1e6*price.InputPerMTok +
		float64(resp.OutputTokens)/1e6*price.OutputPerMTok

	metrics.LLMCalls.WithLabelValues(in.Model, "success").Inc()
	metrics.LLMTokens.WithLabelValues(in.Model, "input").Add(float64(resp.InputTokens))
	metrics.LLMTokens.WithLabelValues(in.Model, "output").Add(float64(resp.OutputTokens))

	g.auditEvent(ctx, "llm.call.completed", in, map[string]interface{}{
		"model":              resp.Model,
		"input_tokens":       resp.InputTokens,
		"output_tokens":      resp.OutputTokens,
		"estimated_cost_usd": actualCost,
		"duration_ms":        duration.Milliseconds(),
	})

	result := &CallResult{
		Content:          resp.Content,
		InputTokens:      resp.InputTokens,
		OutputTokens:     resp.OutputTokens,
		Model:            resp.Model,
		EstimatedCostUSD: actualCost,
		Duration:         duration,
	}

	if g.usage != nil {
		record := UsageRecord{
			TaskID:           in.TaskID,
			AgentID:          in.AgentID,
			ProjectID:        in.ProjectID,
			Model:            resp.Model,
			InputTokens:      resp.InputTokens,
			OutputTokens:     resp.OutputTokens,
			EstimatedCostUSD: actualCost,
			CallType:         in.CallType,
		}
		if err := g.usage.RecordUsage(ctx, record); err != nil {
			slog.Warn("Failed to record token usage",
				"agent_id", in.AgentID, "task_id", in.TaskID, "error", err)
			result.UsageTrackingFailed = true
		}
	}

	return result, nil
}

func (g *Gateway) auditEvent(ctx context.Context, eventType string, in CallInput, metadata map[string]interface{}) {
	metadata["agent_id"] = in.AgentID
	metadata["task_id"] = in.TaskID
	metadata["project_id"] = in.ProjectID
	if g.audit == nil {
		slog.Debug("LLM audit event", "event", eventType, "agent_id", in.AgentID, "task_id", in.TaskID)
		return
	}
	g.audit.Audit(ctx, eventType, "task", in.TaskID, metadata)
}

// backoffDelay returns the delay before the next attempt: 2s, 4s, ... capped
// at 10s.
func backoffDelay(attempt int) time.Duration {
	delay := baseBackoff << (attempt - 1)
	if delay > maxBackoff {
		delay = maxBackoff
	}
	return delay
}
