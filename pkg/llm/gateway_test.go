package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeframe-hq/codeframe/pkg/config"
	"github.com/codeframe-hq/codeframe/pkg/tokens"
)

// fakeProvider returns scripted errors before succeeding.
type fakeProvider struct {
	calls    int
	failures []error
	response Response
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Call(_ context.Context, req Request) (*Response, error) {
	f.calls++
	if f.calls <= len(f.failures) {
		return nil, f.failures[f.calls-1]
	}
	resp := f.response
	if resp.Model == "" {
		resp.Model = req.Model
	}
	return &resp, nil
}

// captureUsage records the usage handed to the sink, optionally failing.
type captureUsage struct {
	records []UsageRecord
	err     error
}

func (c *captureUsage) RecordUsage(_ context.Context, u UsageRecord) error {
	c.records = append(c.records, u)
	return c.err
}

func newTestGateway(t *testing.T, provider Provider) *Gateway {
	t.Helper()
	g := NewGateway(provider, config.DefaultLLMConfig(), config.DefaultRateLimitConfig(), tokens.NewCounter(), nil, nil)
	g.sleep = func(time.Duration) {}
	return g
}

func testInput() CallInput {
	return CallInput{
		AgentID:   "agent-1",
		TaskID:    "task-1",
		ProjectID: "proj-1",
		Model:     "claude-sonnet-4-5",
		System:    "You are a coding agent.",
		Messages:  []Message{{Role: RoleUser, Content: "implement the parser"}},
		MaxTokens: 1000,
		CallType:  "execute",
	}
}

func TestGatewayRejectsUnknownModel(t *testing.T) {
	provider := &fakeProvider{response: Response{Content: "ok"}}
	g := newTestGateway(t, provider)

	in := testInput()
	in.Model = "gpt-4"

	_, err := g.Call(context.Background(), in)
	require.Error(t, err)
	assert.Equal(t, ErrorClassValidation, ClassOf(err))
	assert.Equal(t, 0, provider.calls, "no provider traffic for disallowed models")
}

func TestGatewayRateLimitWindow(t *testing.T) {
	provider := &fakeProvider{response: Response{Content: "ok", InputTokens: 10, OutputTokens: 20}}
	g := newTestGateway(t, provider)

	base := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	now := base
	g.now = func() time.Time { return now }

	// Ten calls inside one window succeed.
	for i := 0; i < 10; i++ {
		now = base.Add(time.Duration(i) * time.Second)
		_, err := g.Call(context.Background(), testInput())
		require.NoError(t, err, "call %d", i+1)
	}

	// The eleventh is refused before the provider sees it.
	callsBefore := provider.calls
	_, err := g.Call(context.Background(), testInput())
	require.Error(t, err)
	assert.Equal(t, CodeAgentRateLimitExceeded, GatewayCode(err))
	assert.Equal(t, callsBefore, provider.calls)

	// A different agent has its own window.
	other := testInput()
	other.AgentID = "agent-2"
	_, err = g.Call(context.Background(), other)
	require.NoError(t, err)

	// After the window slides past the oldest calls, the agent may call again.
	now = base.Add(61 * time.Second)
	_, err = g.Call(context.Background(), testInput())
	require.NoError(t, err)
}

func TestGatewayCostGuardrail(t *testing.T) {
	provider := &fakeProvider{response: Response{Content: "ok"}}
	g := newTestGateway(t, provider)

	in := testInput()
	// Output budget alone prices above the $1.00 cap at $15/MTok.
	in.MaxTokens = 200_000

	_, err := g.Call(context.Background(), in)
	require.Error(t, err)
	assert.Equal(t, CodeCostLimitExceeded, GatewayCode(err))
	assert.Equal(t, 0, provider.calls, "no provider traffic when the estimate exceeds the cap")
}

func TestGatewayCostRefusalDoesNotConsumeQuota(t *testing.T) {
	provider := &fakeProvider{response: Response{Content: "ok"}}
	g := newTestGateway(t, provider)

	over := testInput()
	over.MaxTokens = 200_000
	for i := 0; i < 15; i++ {
		_, err := g.Call(context.Background(), over)
		require.Error(t, err)
		assert.Equal(t, CodeCostLimitExceeded, GatewayCode(err))
	}

	_, err := g.Call(context.Background(), testInput())
	require.NoError(t, err, "refusals must not fill the rate window")
}

func TestGatewayRetriesTransientFailures(t *testing.T) {
	provider := &fakeProvider{
		failures: []error{
			NewProviderError(ErrorClassRateLimit, errors.New("429")),
			NewProviderError(ErrorClassConnection, errors.New("overloaded")),
		},
		response: Response{Content: "done", InputTokens: 12, OutputTokens: 34},
	}
	g := newTestGateway(t, provider)

	var delays []time.Duration
	g.sleep = func(d time.Duration) { delays = append(delays, d) }

	result, err := g.Call(context.Background(), testInput())
	require.NoError(t, err)
	assert.Equal(t, "done", result.Content)
	assert.Equal(t, 12, result.InputTokens)
	assert.Equal(t, 34, result.OutputTokens)
	assert.Equal(t, 3, provider.calls)
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, delays)
}

func TestGatewayRecordsUsagePerCallType(t *testing.T) {
	provider := &fakeProvider{response: Response{Content: "ok", InputTokens: 12, OutputTokens: 34}}
	g := newTestGateway(t, provider)
	sink := &captureUsage{}
	g.usage = sink

	in := testInput()
	in.CallType = "code_review"
	result, err := g.Call(context.Background(), in)
	require.NoError(t, err)
	assert.False(t, result.UsageTrackingFailed)

	require.Len(t, sink.records, 1)
	got := sink.records[0]
	assert.Equal(t, "code_review", got.CallType)
	assert.Equal(t, "agent-1", got.AgentID)
	assert.Equal(t, "task-1", got.TaskID)
	assert.Equal(t, "proj-1", got.ProjectID)
	assert.Equal(t, 12, got.InputTokens)
	assert.Equal(t, 34, got.OutputTokens)
	assert.Equal(t, result.EstimatedCostUSD, got.EstimatedCostUSD)
}

func TestGatewayUsageSinkFailureDoesNotFailCall(t *testing.T) {
	provider := &fakeProvider{response: Response{Content: "ok", InputTokens: 1, OutputTokens: 2}}
	g := newTestGateway(t, provider)
	g.usage = &captureUsage{err: errors.New("db down")}

	result, err := g.Call(context.Background(), testInput())
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Content)
	assert.True(t, result.UsageTrackingFailed)
}

func TestGatewayNoUsageRecordOnFailure(t *testing.T) {
	provider := &fakeProvider{
		failures: []error{
			NewProviderError(ErrorClassAuthentication, errors.New("401")),
		},
	}
	g := newTestGateway(t, provider)
	sink := &captureUsage{}
	g.usage = sink

	_, err := g.Call(context.Background(), testInput())
	require.Error(t, err)
	assert.Empty(t, sink.records, "failed calls consume no billed tokens")
}

func TestGatewayGivesUpAfterMaxAttempts(t *testing.T) {
	provider := &fakeProvider{
		failures: []error{
			NewProviderError(ErrorClassTimeout, errors.New("deadline")),
			NewProviderError(ErrorClassTimeout, errors.New("deadline")),
			NewProviderError(ErrorClassTimeout, errors.New("deadline")),
		},
	}
	g := newTestGateway(t, provider)

	_, err := g.Call(context.Background(), testInput())
	require.Error(t, err)
	assert.Equal(t, ErrorClassTimeout, ClassOf(err))
	assert.Equal(t, 3, provider.calls)
}

func TestGatewayDoesNotRetryAuthFailures(t *testing.T) {
	provider := &fakeProvider{
		failures: []error{
			NewProviderError(ErrorClassAuthentication, errors.New("401")),
		},
	}
	g := newTestGateway(t, provider)

	_, err := g.Call(context.Background(), testInput())
	require.Error(t, err)
	assert.Equal(t, ErrorClassAuthentication, ClassOf(err))
	assert.Equal(t, 1, provider.calls, "authentication failures are terminal")
}

func TestBackoffDelay(t *testing.T) {
	assert.Equal(t, 2*time.Second, backoffDelay(1))
	assert.Equal(t, 4*time.Second, backoffDelay(2))
	assert.Equal(t, 8*time.Second, backoffDelay(3))
	assert.Equal(t, 10*time.Second, backoffDelay(4), "backoff caps at 10s")
}

func TestTimeoutScalesWithOutputBudget(t *testing.T) {
	assert.Equal(t, 30*time.Second, Timeout(0))
	assert.Equal(t, 45*time.Second, Timeout(1000))
	assert.Equal(t, 90*time.Second, Timeout(4096))
}
