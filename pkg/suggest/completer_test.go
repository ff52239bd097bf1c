package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCompleter() *Completer {
	c := NewCompleter(false)
	c.AddWord("apple", 100)
	c.AddWord("application", 80)
	c.AddWord("apply", 60)
	c.AddWord("app", 40)
	c.AddWord("banana", 90)
	return c
}

func TestCompleteRankedByFrequency(t *testing.T) {
	c := newTestCompleter()

	got := c.Complete("app", 0)
	require.Len(t, got, 4)
	assert.Equal(t, "apple", got[0].Word)
	assert.Equal(t, 100, got[0].Frequency)
	assert.Equal(t, "application", got[1].Word)
	assert.Equal(t, "apply", got[2].Word)
	assert.Equal(t, "app", got[3].Word)
}

func TestCompleteLimit(t *testing.T) {
	c := newTestCompleter()

	got := c.Complete("app", 2)
	require.Len(t, got, 2)
	assert.Equal(t, "apple", got[0].Word)
}

func TestCompleteNoMatches(t *testing.T) {
	c := newTestCompleter()
	assert.Empty(t, c.Complete("zzz", 10))
}

func TestCompleteAppliesCapitalization(t *testing.T) {
	c := newTestCompleter()

	got := c.Complete("Ap", 1)
	require.Len(t, got, 1)
	assert.Equal(t, "Apple", got[0].Word)
}

func TestCompleteFrequencyThreshold(t *testing.T) {
	c := NewCompleter(false)
	c.SetThresholds(50, 50)
	c.AddWord("common", 100)
	c.AddWord("comet", 10)

	got := c.Complete("com", 0)
	require.Len(t, got, 1)
	assert.Equal(t, "common", got[0].Word)
}

func TestContainsCaseInsensitive(t *testing.T) {
	c := newTestCompleter()

	assert.True(t, c.Contains("apple"))
	assert.True(t, c.Contains("Apple"))
	assert.False(t, c.Contains("appl"))
	assert.False(t, c.Contains(""))
}

func TestSearchRanksCloseMatchesFirst(t *testing.T) {
	c := NewCompleter(false)
	c.AddWord("hello", 1)
	c.AddWord("hallo", 1)
	c.AddWord("hullo", 1)
	c.AddWord("world", 1)

	got := c.Search("helo", 3)
	require.Len(t, got, 3)
	assert.NotEqual(t, "world", got[0].Word)
	for _, s := range got {
		assert.True(t, c.Contains(s.Word))
	}
}

func TestSearchDefaultLimit(t *testing.T) {
	c := NewCompleter(false)
	for _, w := range []string{
		"aa", "ab", "ac", "ad", "ae", "af", "ag", "ah", "ai", "aj", "ak", "al",
	} {
		c.AddWord(w, 1)
	}

	got := c.Search("a", 0)
	assert.Len(t, got, DefaultSearchLimit)
}

func TestAddWordAccumulatesFrequency(t *testing.T) {
	c := NewCompleter(false)
	c.AddWord("word", 3)
	c.AddWord("word", 4)

	got := c.Complete("wor", 0)
	require.Len(t, got, 1)
	assert.Equal(t, 7, got[0].Frequency)

	stats := c.Stats()
	assert.Equal(t, 1, stats["totalWords"])
	assert.Equal(t, 7, stats["maxFrequency"])
}

func TestHotCacheSearchAndEviction(t *testing.T) {
	hc := NewHotCache(2)
	hc.Offer("alpha", 10)
	hc.Offer("beta", 20)

	// Touch alpha so beta becomes the LRU entry.
	hc.Search("alpha", 1)
	hc.Offer("gamma", 30)

	words := func(prefix string) []string {
		var out []string
		for _, s := range hc.Search(prefix, 1) {
			out = append(out, s.Word)
		}
		return out
	}

	assert.ElementsMatch(t, []string{"alpha"}, words("alpha"))
	assert.ElementsMatch(t, []string{"gamma"}, words("gamma"))
	assert.Empty(t, words("beta"))

	stats := hc.Stats()
	assert.Equal(t, 2, stats["hotCacheWords"])
}
