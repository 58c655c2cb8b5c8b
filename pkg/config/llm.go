package config

// ModelPrice holds per-model pricing in USD per million tokens.
type ModelPrice struct {
	InputPerMTok  float64 `yaml:"input_per_mtok"`
	OutputPerMTok float64 `yaml:"output_per_mtok"`
}

// LLMConfig holds provider credentials, the model allowlist, and the price
// table used by the gateway's cost guardrail.
type LLMConfig struct {
	// APIKey is the provider credential. Never logged in cleartext.
	APIKey string `yaml:"-"`

	// DefaultModel is used when a task does not name one.
	DefaultModel string `yaml:"default_model"`

	// MaxCostPerTask is the USD cap per task execution; estimates above it
	// are refused before any provider call.
	MaxCostPerTask float64 `yaml:"max_cost_per_task"`

	// AllowedModels is the model identifier allowlist.
	AllowedModels []string `yaml:"allowed_models"`

	// Prices maps model identifiers to their price table entries. Models
	// missing from the table fall back to the most expensive known entry so
	// the guardrail errs toward refusal.
	Prices map[string]ModelPrice `yaml:"prices"`
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		DefaultModel:   "claude-sonnet-4-5",
		MaxCostPerTask: 1.0,
		AllowedModels: []string{
			"claude-sonnet-4-5",
			"claude-opus-4-1",
			"claude-haiku-4-5",
			"claude-3-5-haiku-latest",
		},
		Prices: map[string]ModelPrice{
			"claude-sonnet-4-5":       {InputPerMTok: 3.0, OutputPerMTok: 15.0},
			"claude-opus-4-1":         {InputPerMTok: 15.0, OutputPerMTok: 75.0},
			"claude-haiku-4-5":        {InputPerMTok: 1.0, OutputPerMTok: 5.0},
			"claude-3-5-haiku-latest": {InputPerMTok: 0.8, OutputPerMTok: 4.0},
		},
	}
}

// ModelAllowed reports whether the model identifier is on the allowlist.
func (c *LLMConfig) ModelAllowed(model string) bool {
	for _, m := range c.AllowedModels {
		if m == model {
			return true
		}
	}
	return false
}

// PriceFor returns the price entry for a model. Unknown models get the most
// expensive known entry.
func (c *LLMConfig) PriceFor(model string) ModelPrice {
	if p, ok := c.Prices[model]; ok {
		return p
	}
	var max ModelPrice
	for _, p := range c.Prices {
		if p.InputPerMTok+p.OutputPerMTok > max.InputPerMTok+max.OutputPerMTok {
			max = p
		}
	}
	return max
}
