// Package llm wraps the model provider behind a uniform call boundary and
// layers the gateway concerns on top: per-agent rate limiting, the cost
// guardrail, input sanitization, and retrying timed calls.
package llm

import "context"

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of the conversation sent to the provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is the uniform provider call:
// call(model, system, messages, maxTokens) bounded by the context deadline.
type Request struct {
	Model     string
	System    string
	Messages  []Message
	MaxTokens int
}

// Response is the uniform provider result.
type Response struct {
	Content      string
	InputTokens  int
	OutputTokens int
	Model        string
}

// Provider is the single logical LLM call the core consumes. Implementations
// classify their errors with the taxonomy in errors.go.
type Provider interface {
	Call(ctx context.Context, req Request) (*Response, error)
	Name() string
}
