package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/codeframe-hq/codeframe/pkg/masking"
)

// AnthropicProvider implements Provider over the Anthropic Messages API.
type AnthropicProvider struct {
	client anthropic.Client
}

// NewAnthropicProvider creates a provider. The key must be present and
// plausibly shaped; it is validated here so calls fail fast, and it is never
// logged in cleartext.
func NewAnthropicProvider(apiKey string) (*AnthropicProvider, error) {
	if apiKey == "" {
		return nil, NewProviderError(ErrorClassAuthentication,
			errors.New("ANTHROPIC_API_KEY is not set"))
	}
	if !strings.HasPrefix(apiKey, "sk-ant-") {
		return nil, NewProviderError(ErrorClassAuthentication,
			fmt.Errorf("malformed API key %s", masking.MaskCredential(apiKey)))
	}
	return &AnthropicProvider{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
	}, nil
}

// Name returns the provider identifier.
func (p *AnthropicProvider) Name() string {
	return "anthropic"
}

// Call performs one Messages API request bounded by the context deadline.
func (p *AnthropicProvider) Call(ctx context.Context, req Request) (*Response, error) {
	msgs := make([]anthropic.MessageParam, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case RoleAssistant:
			msgs = append(msgs, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		default:
			msgs = append(msgs, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: int64(req.MaxTokens),
		Messages:  msgs,
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, classifyAnthropicError(err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		sb.WriteString(block.Text)
	}

	return &Response{
		Content:      sb.String(),
		InputTokens:  int(msg.Usage.InputTokens),
		OutputTokens: int(msg.Usage.OutputTokens),
		Model:        string(msg.Model),
	}, nil
}

// classifyAnthropicError maps SDK errors onto the provider error taxonomy.
func classifyAnthropicError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return NewProviderError(ErrorClassTimeout, err)
	}

	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		switch apierr.StatusCode {
		case 401, 403:
			return NewProviderError(ErrorClassAuthentication, err)
		case 429:
			return NewProviderError(ErrorClassRateLimit, err)
		case 400, 404, 422:
			return NewProviderError(ErrorClassValidation, err)
		case 500, 502, 503, 529:
			return NewProviderError(ErrorClassConnection, err)
		default:
			return NewProviderError(ErrorClassUnknown, err)
		}
	}

	// No API response at all: transport-level failure
	return NewProviderError(ErrorClassConnection, err)
}
