// Package tokens provides token counting with a content-hashed cache.
// Counts come from a tiktoken encoder compatible with mainstream LLM
// tokenization; when the encoder cannot be loaded (offline environments)
// the counter degrades to the ~4 characters-per-token heuristic.
package tokens

import (
	"crypto/sha256"
	"log/slog"

	"github.com/pkoukk/tiktoken-go"
)

// charsPerToken is the fallback heuristic for English text.
const charsPerToken = 4

// Counter counts tokens with a per-instance cache keyed by the SHA-256 of
// the content. No thread-safety contract: callers serialize or instantiate
// per scope.
type Counter struct {
	enc   *tiktoken.Tiktoken
	cache map[[sha256.Size]byte]int
}

// NewCounter creates a counter backed by the cl100k_base encoding.
func NewCounter() *Counter {
	enc, err := tiktoken.GetEncoding(tiktoken.MODEL_CL100K_BASE)
	if err != nil {
		slog.Warn("Token encoder unavailable, falling back to character heuristic", "error", err)
		enc = nil
	}
	return &Counter{
		enc:   enc,
		cache: make(map[[sha256.Size]byte]int),
	}
}

// Count returns the token count for text. Empty input returns 0. Repeated
// counts of identical content are served from the cache.
func (c *Counter) Count(text string) int {
	if text == "" {
		return 0
	}
	key := sha256.Sum256([]byte(text))
	if n, ok := c.cache[key]; ok {
		return n
	}
	n := c.encode(text)
	c.cache[key] = n
	return n
}

// CountBatch counts each text, preserving order and reusing the cache.
func (c *Counter) CountBatch(texts []string) []int {
	counts := make([]int, len(texts))
	for i, t := range texts {
		counts[i] = c.Count(t)
	}
	return counts
}

// CountAll returns the sum over all texts. Empty strings count as 0.
func (c *Counter) CountAll(texts []string) int {
	total := 0
	for _, t := range texts {
		total += c.Count(t)
	}
	return total
}

// CacheSize returns the number of cached entries.
func (c *Counter) CacheSize() int {
	return len(c.cache)
}

// Clear resets the cache.
func (c *Counter) Clear() {
	c.cache = make(map[[sha256.Size]byte]int)
}

func (c *Counter) encode(text string) int {
	if c.enc == nil {
		// Round up: overestimating triggers flash saves slightly early,
		// which is the safe direction.
		return (len(text) + charsPerToken - 1) / charsPerToken
	}
	return len(c.enc.Encode(text, nil, nil))
}
