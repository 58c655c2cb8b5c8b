package gates

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/codeframe-hq/codeframe/ent"
	"github.com/codeframe-hq/codeframe/pkg/llm"
	"github.com/codeframe-hq/codeframe/pkg/models"
)

// Finding is one code-review observation. Only critical and high findings
// become gate failures.
type Finding struct {
	Severity models.Severity `json:"severity"`
	Message  string          `json:"message"`
	File     string          `json:"file,omitempty"`
}

// Reviewer produces code-review findings for a task's changes.
type Reviewer interface {
	Review(ctx context.Context, task *ent.Task, projectRoot string) ([]Finding, error)
}

// NoopReviewer reports no findings. Used when no review backend is
// configured.
type NoopReviewer struct{}

// Review implements Reviewer.
func (NoopReviewer) Review(context.Context, *ent.Task, string) ([]Finding, error) {
	return nil, nil
}

const reviewSystemPrompt = `You are a strict code reviewer. Review the described change and respond ` +
	`with a JSON array only, no prose. Each element: {"severity": "critical"|"high"|"medium"|"low", ` +
	`"message": "...", "file": "..."}. Respond with [] when you have no findings.`

// LLMReviewer asks the model for structured findings about a task. Review
// calls go through the gateway, so they share the agent's rate and cost
// limits.
type LLMReviewer struct {
	gateway *llm.Gateway
	model   string
}

// NewLLMReviewer creates a gateway-backed reviewer.
func NewLLMReviewer(gateway *llm.Gateway, model string) *LLMReviewer {
	return &LLMReviewer{gateway: gateway, model: model}
}

// Review implements Reviewer. Responses that are not a JSON array degrade to
// zero findings rather than failing the gate.
func (r *LLMReviewer) Review(ctx context.Context, task *ent.Task, projectRoot string) ([]Finding, error) {
	agentID := ""
	if task.AssignedTo != nil {
		agentID = *task.AssignedTo
	}

	prompt := fmt.Sprintf("Task #%s: %s\n\nDescription:\n%s\n\nProject root: %s",
		task.TaskNumber, task.Title, task.Description, projectRoot)

	result, err := r.gateway.Call(ctx, llm.CallInput{
		AgentID:   agentID,
		TaskID:    task.ID,
		ProjectID: task.ProjectID,
		Model:     r.model,
		System:    reviewSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens: 2048,
		CallType:  "code_review",
	})
	if err != nil {
		return nil, fmt.Errorf("review call failed: %w", err)
	}

	return parseFindings(result.Content), nil
}

// parseFindings extracts findings from a model response. The payload may be
// wrapped in prose or code fences; anything unparseable yields no findings.
func parseFindings(content string) []Finding {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start < 0 || end <= start {
		return nil
	}

	parsed := gjson.Parse(content[start : end+1])
	if !parsed.IsArray() {
		return nil
	}

	var findings []Finding
	for _, item := range parsed.Array() {
		message := item.Get("message").String()
		if message == "" {
			continue
		}
		severity := models.Severity(item.Get("severity").String())
		switch severity {
		case models.SeverityCritical, models.SeverityHigh, models.SeverityMedium, models.SeverityLow:
		default:
			severity = models.SeverityLow
		}
		findings = append(findings, Finding{
			Severity: severity,
			Message:  message,
			File:     item.Get("file").String(),
		})
	}
	return findings
}
