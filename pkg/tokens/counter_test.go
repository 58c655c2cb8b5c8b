package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountEmptyIsZero(t *testing.T) {
	c := NewCounter()
	assert.Equal(t, 0, c.Count(""))
	assert.Equal(t, 0, c.CacheSize(), "empty input is not cached")
}

func TestCountIsCached(t *testing.T) {
	c := NewCounter()

	first := c.Count("func main() { fmt.Println(\"hello\") }")
	assert.Greater(t, first, 0)
	assert.Equal(t, 1, c.CacheSize())

	second := c.Count("func main() { fmt.Println(\"hello\") }")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, c.CacheSize(), "identical content shares one entry")
}

func TestCountBatchPreservesOrder(t *testing.T) {
	c := NewCounter()

	texts := []string{"alpha", "", "a much longer piece of text than the first one"}
	counts := c.CountBatch(texts)

	assert.Len(t, counts, 3)
	assert.Equal(t, 0, counts[1])
	assert.Greater(t, counts[2], counts[0])
}

func TestCountAllSumsBatch(t *testing.T) {
	c := NewCounter()

	texts := []string{"one", "two", "three"}
	total := c.CountAll(texts)

	sum := 0
	for _, n := range c.CountBatch(texts) {
		sum += n
	}
	assert.Equal(t, sum, total)
}

func TestClearResetsCache(t *testing.T) {
	c := NewCounter()

	c.Count("cached content")
	assert.Equal(t, 1, c.CacheSize())

	c.Clear()
	assert.Equal(t, 0, c.CacheSize())
}

func TestHeuristicFallbackRoundsUp(t *testing.T) {
	c := &Counter{cache: make(map[[32]byte]int)}

	// 5 chars at ~4 chars/token rounds up to 2.
	assert.Equal(t, 2, c.Count("abcde"))
	assert.Equal(t, 1, c.Count("abcd"))
}
