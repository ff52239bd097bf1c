package suggest

import (
	"sort"
	"strings"

	"github.com/bastiangx/trieserve/internal/utils"
	"github.com/bastiangx/trieserve/pkg/trie"
	"github.com/charmbracelet/log"
)

// DefaultSearchLimit caps ranked fuzzy results when the caller passes no
// usable limit.
const DefaultSearchLimit = 10

// Suggestion is a single completion result.
type Suggestion struct {
	Word      string
	Frequency int
}

// Completer serves prefix completions and ranked fuzzy search from a single
// character trie. Words are stored lowercase; the original capitalization of
// the request is reapplied to results.
type Completer struct {
	trie         *trie.Trie
	hotCache     *HotCache
	wordFreqs    map[string]int
	totalWords   int
	maxFrequency int

	minFreqThreshold   int
	minFreqShortPrefix int
}

// NewCompleter creates an empty completion engine. With threadSafe set, the
// underlying trie serializes all operations behind one lock, which is what
// server mode uses.
func NewCompleter(threadSafe bool) *Completer {
	newTrie := trie.New
	if threadSafe {
		newTrie = trie.NewThreadSafe
	}
	return &Completer{
		trie:               newTrie(),
		hotCache:           NewHotCache(defaultMaxHotWords),
		wordFreqs:          make(map[string]int),
		minFreqThreshold:   1,
		minFreqShortPrefix: 1,
	}
}

// SetThresholds adjusts the minimum frequency a word needs to appear in
// Complete results. The short-prefix threshold applies to prefixes of one or
// two characters and to repetitive input, where low-frequency noise dominates.
func (c *Completer) SetThresholds(minFreq, minFreqShortPrefix int) {
	c.minFreqThreshold = minFreq
	c.minFreqShortPrefix = minFreqShortPrefix
}

// AddWord inserts word with the given frequency. Words are lowercased before
// storage. A frequency below 1 counts as 1.
func (c *Completer) AddWord(word string, frequency int) {
	if word == "" {
		return
	}
	if frequency < 1 {
		frequency = 1
	}
	lower := strings.ToLower(word)

	c.trie.Add(lower, uint32(frequency))
	if _, seen := c.wordFreqs[lower]; !seen {
		c.totalWords++
	}
	c.wordFreqs[lower] += frequency
	if c.wordFreqs[lower] > c.maxFrequency {
		c.maxFrequency = c.wordFreqs[lower]
	}
	c.hotCache.Offer(lower, c.wordFreqs[lower])
}

// Contains reports whether word was added as a complete word. The check is
// case-insensitive since storage is lowercase.
func (c *Completer) Contains(word string) bool {
	return c.trie.Contains(strings.ToLower(word))
}

// Complete returns words starting with prefix, ranked by frequency. The
// prefix's capitalization pattern is reapplied to each result. When the trie
// walk produces fewer results than limit, the hot cache tops them up.
func (c *Completer) Complete(prefix string, limit int) []Suggestion {
	lowerPrefix := strings.ToLower(prefix)

	capitalPositions := make([]bool, len(prefix))
	for i := 0; i < len(prefix); i++ {
		capitalPositions[i] = prefix[i] >= 'A' && prefix[i] <= 'Z'
	}

	threshold := c.minFreqThreshold
	if len(lowerPrefix) <= 2 || utils.IsRepetitive(lowerPrefix) {
		threshold = c.minFreqShortPrefix
	}

	var suggestions []Suggestion
	for _, word := range c.trie.Suggest(lowerPrefix, 0) {
		freq := int(c.trie.Frequency(word))
		if freq < threshold {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Word:      ApplyCapitalization(word, capitalPositions),
			Frequency: freq,
		})
	}

	if limit > 0 && len(suggestions) < limit {
		for _, hot := range c.hotCache.Search(lowerPrefix, threshold) {
			suggestions = append(suggestions, Suggestion{
				Word:      ApplyCapitalization(hot.Word, capitalPositions),
				Frequency: hot.Frequency,
			})
		}
		suggestions = dedupe(suggestions)
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Frequency != suggestions[j].Frequency {
			return suggestions[i].Frequency > suggestions[j].Frequency
		}
		return suggestions[i].Word < suggestions[j].Word
	})

	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

// Search runs the ranked fuzzy search over the whole dictionary. Results are
// ordered by the trie's edit-distance scoring; a limit below 1 falls back to
// DefaultSearchLimit.
func (c *Completer) Search(query string, limit int) []Suggestion {
	if limit < 1 {
		limit = DefaultSearchLimit
	}
	lowerQuery := strings.ToLower(query)

	words := c.trie.SearchRanked(lowerQuery, limit)
	suggestions := make([]Suggestion, 0, len(words))
	for _, word := range words {
		suggestions = append(suggestions, Suggestion{
			Word:      word,
			Frequency: int(c.trie.Frequency(word)),
		})
	}
	log.Debugf("fuzzy search for %q returned %d results", query, len(suggestions))
	return suggestions
}

// Stats returns statistics about the loaded dictionary.
func (c *Completer) Stats() map[string]int {
	stats := map[string]int{
		"totalWords":   c.totalWords,
		"maxFrequency": c.maxFrequency,
	}
	for k, v := range c.hotCache.Stats() {
		stats[k] = v
	}
	return stats
}

// ApplyCapitalization uppercases the positions of word that were uppercase in
// the original request, so "Ap" completes to "Apple" and not "apple".
func ApplyCapitalization(word string, capitalPositions []bool) string {
	if len(capitalPositions) == 0 {
		return word
	}
	b := []byte(word)
	for i := 0; i < len(b) && i < len(capitalPositions); i++ {
		if capitalPositions[i] && b[i] >= 'a' && b[i] <= 'z' {
			b[i] = b[i] - 'a' + 'A'
		}
	}
	return string(b)
}

func dedupe(suggestions []Suggestion) []Suggestion {
	seen := make(map[string]bool, len(suggestions))
	out := suggestions[:0]
	for _, s := range suggestions {
		if seen[s.Word] {
			continue
		}
		seen[s.Word] = true
		out = append(out, s)
	}
	return out
}
