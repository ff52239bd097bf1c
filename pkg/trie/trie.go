/*
Package trie implements the character trie that backs all of trieserve's
lookups: exact containment, prefix suggestions, and ranked fuzzy search.

Words are stored byte-by-byte with no normalization or Unicode awareness.
Multi-byte characters are treated as their raw byte sequence; callers who need
grapheme-level behavior must preprocess upstream.
*/
package trie

import (
	"sort"
	"sync"
)

// node is a single character position. A node is terminal iff some inserted
// word ends exactly there; freq counts how many times that word was inserted.
type node struct {
	children map[byte]*node
	terminal bool
	freq     uint32
}

func newNode() *node {
	return &node{children: make(map[byte]*node)}
}

// Trie is a byte-keyed prefix tree. The zero value is not usable; construct
// with New or NewThreadSafe.
//
// By default a Trie is NOT safe for concurrent use. NewThreadSafe returns one
// where every public operation holds a single exclusive lock for its whole
// duration, serializing all access to the instance.
type Trie struct {
	root *node
	safe bool
	mu   sync.Mutex
}

// New returns an empty trie without internal locking.
func New() *Trie {
	return &Trie{root: newNode()}
}

// NewThreadSafe returns an empty trie whose operations are serialized by an
// internal mutex.
func NewThreadSafe() *Trie {
	return &Trie{root: newNode(), safe: true}
}

func (t *Trie) lock() {
	if t.safe {
		t.mu.Lock()
	}
}

func (t *Trie) unlock() {
	if t.safe {
		t.mu.Unlock()
	}
}

// Insert adds word to the trie, creating nodes as needed. Inserting the same
// word again only increments its frequency; inserting the empty string marks
// the root terminal. Runs in O(len(word)).
func (t *Trie) Insert(word string) {
	t.Add(word, 1)
}

// Add is a bulk Insert: equivalent to count consecutive Insert calls for
// word. A count of 0 is a no-op. Used by dictionary loading, where words
// arrive with precomputed frequencies.
func (t *Trie) Add(word string, count uint32) {
	if count == 0 {
		return
	}
	t.lock()
	defer t.unlock()

	n := t.root
	for i := 0; i < len(word); i++ {
		c := word[i]
		next, ok := n.children[c]
		if !ok {
			next = newNode()
			n.children[c] = next
		}
		n = next
	}
	n.terminal = true
	n.freq += count
}

// Contains reports whether word was inserted as a complete word. Reaching a
// node is not enough: prefixes of inserted words are not contained unless
// inserted themselves, and "" is contained only if explicitly inserted.
func (t *Trie) Contains(word string) bool {
	t.lock()
	defer t.unlock()

	n := t.walk(word)
	return n != nil && n.terminal
}

// Frequency returns the number of times word was inserted, or 0 if it is not
// a complete word in the trie.
func (t *Trie) Frequency(word string) uint32 {
	t.lock()
	defer t.unlock()

	n := t.walk(word)
	if n == nil || !n.terminal {
		return 0
	}
	return n.freq
}

// Len returns the number of distinct words stored.
func (t *Trie) Len() int {
	t.lock()
	defer t.unlock()

	count := 0
	var walk func(n *node)
	walk = func(n *node) {
		if n.terminal {
			count++
		}
		for _, child := range n.children {
			walk(child)
		}
	}
	walk(t.root)
	return count
}

// Suggest returns the inserted words sharing prefix, in the order the
// traversal discovers them. Map iteration order makes that order
// unspecified; callers must not rely on lexicographic results. A missing
// prefix yields an empty slice, not an error. When limit != 0 the walk stops
// early after limit results; limit 0 returns everything.
func (t *Trie) Suggest(prefix string, limit int) []string {
	t.lock()
	defer t.unlock()

	n := t.walk(prefix)
	if n == nil {
		return nil
	}
	var out []string
	collect(n, []byte(prefix), &out, limit)
	return out
}

func (t *Trie) walk(word string) *node {
	n := t.root
	for i := 0; i < len(word); i++ {
		next, ok := n.children[word[i]]
		if !ok {
			return nil
		}
		n = next
	}
	return n
}

// collect appends every terminal word under n to out, depth first. current
// carries the accumulated bytes from the root; sibling branches reuse its
// backing array, which is safe because string(current) copies on emit.
func collect(n *node, current []byte, out *[]string, limit int) {
	if n.terminal {
		*out = append(*out, string(current))
		if limit != 0 && len(*out) >= limit {
			return
		}
	}
	for c, child := range n.children {
		collect(child, append(current, c), out, limit)
		if limit != 0 && len(*out) >= limit {
			return
		}
	}
}

// SearchRanked scans every word in the trie and ranks it against query:
//
//	score = 1/(1+editDistance) + 0.02*len(word) + 0.05*frequency
//
// Results are sorted by descending score with ties broken by ascending word,
// so the ordering is a deterministic total order. When limit != 0 only the
// top limit words are returned; limit 0 returns all of them. The whole
// dictionary is scanned on every call.
func (t *Trie) SearchRanked(query string, limit int) []string {
	t.lock()
	defer t.unlock()

	var scored []scoredWord
	collectScored(t.root, nil, query, &scored)

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].word < scored[j].word
	})

	take := len(scored)
	if limit != 0 && limit < take {
		take = limit
	}
	out := make([]string, 0, take)
	for _, s := range scored[:take] {
		out = append(out, s.word)
	}
	return out
}

type scoredWord struct {
	word  string
	score float64
}

func collectScored(n *node, current []byte, query string, out *[]scoredWord) {
	if n.terminal {
		word := string(current)
		*out = append(*out, scoredWord{word: word, score: scoreWord(query, word, n.freq)})
	}
	for c, child := range n.children {
		collectScored(child, append(current, c), query, out)
	}
}
