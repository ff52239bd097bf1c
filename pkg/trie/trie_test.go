package trie

import (
	"fmt"
	"sort"
	"sync"
	"testing"
)

func TestInsertAndContains(t *testing.T) {
	tr := New()

	tr.Insert("alice")
	tr.Insert("alicia")
	tr.Insert("bob")

	tests := []struct {
		word string
		want bool
	}{
		{"alice", true},
		{"alicia", true},
		{"bob", true},
		{"ali", false},   // prefix-only path, never inserted
		{"bobby", false}, // extends past an inserted word
		{"eve", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("contains_%q", tt.word), func(t *testing.T) {
			if got := tr.Contains(tt.word); got != tt.want {
				t.Errorf("Contains(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestContainsSurvivesFurtherInserts(t *testing.T) {
	tr := New()
	tr.Insert("alpha")

	for _, w := range []string{"beta", "gamma", "alp", "alphabet"} {
		tr.Insert(w)
		if !tr.Contains("alpha") {
			t.Fatalf("Contains(\"alpha\") turned false after inserting %q", w)
		}
	}
}

func TestEmptyStringInsert(t *testing.T) {
	tr := New()

	if tr.Contains("") {
		t.Error("Contains(\"\") = true on empty trie")
	}

	tr.Insert("")
	if !tr.Contains("") {
		t.Error("Contains(\"\") = false after inserting the empty string")
	}
	if got := tr.Frequency(""); got != 1 {
		t.Errorf("Frequency(\"\") = %d, want 1", got)
	}
}

func TestInsertIdempotentForStructure(t *testing.T) {
	tr := New()

	tr.Insert("word")
	tr.Insert("word")
	tr.Insert("word")

	if got := tr.Frequency("word"); got != 3 {
		t.Errorf("Frequency = %d after 3 inserts, want 3", got)
	}
	if got := tr.Len(); got != 1 {
		t.Errorf("Len = %d, want 1", got)
	}
}

func TestAddBulk(t *testing.T) {
	tr := New()

	tr.Add("hello", 40)
	tr.Add("hello", 2)
	tr.Add("noop", 0)

	if got := tr.Frequency("hello"); got != 42 {
		t.Errorf("Frequency(\"hello\") = %d, want 42", got)
	}
	if tr.Contains("noop") {
		t.Error("Add with count 0 should not insert the word")
	}
}

func TestSuggestReturnsAllMatches(t *testing.T) {
	tr := New()

	words := []string{"ali", "alice", "alicia", "bob"}
	for _, w := range words {
		tr.Insert(w)
	}

	got := tr.Suggest("ali", 0)
	sort.Strings(got)

	want := []string{"ali", "alice", "alicia"}
	if len(got) != len(want) {
		t.Fatalf("Suggest(\"ali\", 0) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Suggest(\"ali\", 0) = %v, want %v", got, want)
		}
	}
}

func TestSuggestMissingPrefix(t *testing.T) {
	tr := New()
	tr.Insert("alice")

	if got := tr.Suggest("zzz", 0); len(got) != 0 {
		t.Errorf("Suggest(\"zzz\", 0) = %v, want empty", got)
	}
}

func TestSuggestLimit(t *testing.T) {
	tr := New()
	for _, w := range []string{"a", "aa", "aaa", "aaaa"} {
		tr.Insert(w)
	}

	got := tr.Suggest("a", 2)
	if len(got) != 2 {
		t.Fatalf("Suggest(\"a\", 2) returned %d items, want 2", len(got))
	}
	for _, w := range got {
		if w[0] != 'a' {
			t.Errorf("suggestion %q does not share prefix \"a\"", w)
		}
		if !tr.Contains(w) {
			t.Errorf("suggestion %q was never inserted", w)
		}
	}
}

func TestSuggestNoDuplicates(t *testing.T) {
	tr := New()
	for _, w := range []string{"car", "cart", "carton", "car", "cart"} {
		tr.Insert(w)
	}

	got := tr.Suggest("car", 0)
	seen := make(map[string]bool, len(got))
	for _, w := range got {
		if seen[w] {
			t.Errorf("duplicate suggestion %q", w)
		}
		seen[w] = true
	}
	if len(seen) != 3 {
		t.Errorf("got %d distinct suggestions, want 3", len(seen))
	}
}

func TestSearchRankedBasic(t *testing.T) {
	tr := New()
	for _, w := range []string{"hello", "hallo", "hullo", "world"} {
		tr.Insert(w)
	}

	got := tr.SearchRanked("helo", 3)
	if len(got) != 3 {
		t.Fatalf("SearchRanked returned %d items, want 3", len(got))
	}
	// "world" is at edit distance >= 3 from "helo" and must not win.
	if got[0] == "world" {
		t.Errorf("SearchRanked ranked %q first", got[0])
	}
}

func TestSearchRankedDeterministicOrder(t *testing.T) {
	tr := New()
	// Same length, same distance from the query, same frequency: the
	// tiebreak has to fall back to ascending word order.
	tr.Insert("bat")
	tr.Insert("cat")
	tr.Insert("rat")

	got := tr.SearchRanked("hat", 0)
	want := []string{"bat", "cat", "rat"}
	if len(got) != len(want) {
		t.Fatalf("SearchRanked = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SearchRanked = %v, want %v", got, want)
		}
	}
}

func TestSearchRankedFrequencyChangesRank(t *testing.T) {
	tr := New()
	tr.Insert("bat")
	tr.Insert("cat")

	before := tr.SearchRanked("hat", 0)
	if before[0] != "bat" {
		t.Fatalf("expected lexicographic winner before boosting, got %v", before)
	}

	// Same distance to the query, but "cat" now carries a frequency bonus.
	tr.Insert("cat")
	after := tr.SearchRanked("hat", 0)
	if after[0] != "cat" {
		t.Errorf("expected frequency boost to promote \"cat\", got %v", after)
	}
}

func TestSearchRankedExactMatchScoresSimilarityOne(t *testing.T) {
	tr := New()
	tr.Insert("match")
	tr.Insert("patch")

	got := tr.SearchRanked("match", 1)
	if len(got) != 1 || got[0] != "match" {
		t.Errorf("SearchRanked(\"match\", 1) = %v, want [match]", got)
	}
}

func TestSearchRankedLimitZeroReturnsAll(t *testing.T) {
	tr := New()
	words := []string{"one", "two", "three", "four", "five"}
	for _, w := range words {
		tr.Insert(w)
	}

	if got := tr.SearchRanked("one", 0); len(got) != len(words) {
		t.Errorf("SearchRanked with limit 0 returned %d items, want %d", len(got), len(words))
	}
	if got := tr.SearchRanked("one", 2); len(got) != 2 {
		t.Errorf("SearchRanked with limit 2 returned %d items", len(got))
	}
}

func TestSearchRankedEmptyTrie(t *testing.T) {
	tr := New()
	if got := tr.SearchRanked("anything", 10); len(got) != 0 {
		t.Errorf("SearchRanked on empty trie = %v, want empty", got)
	}
}

func TestReadOperationsIdempotent(t *testing.T) {
	tr := New()
	for _, w := range []string{"hello", "hallo", "help", "held"} {
		tr.Insert(w)
	}

	s1 := tr.Suggest("hel", 0)
	s2 := tr.Suggest("hel", 0)
	sort.Strings(s1)
	sort.Strings(s2)
	if fmt.Sprint(s1) != fmt.Sprint(s2) {
		t.Errorf("Suggest not idempotent: %v vs %v", s1, s2)
	}

	r1 := tr.SearchRanked("hel", 0)
	r2 := tr.SearchRanked("hel", 0)
	if fmt.Sprint(r1) != fmt.Sprint(r2) {
		t.Errorf("SearchRanked not idempotent: %v vs %v", r1, r2)
	}

	if tr.Contains("hello") != tr.Contains("hello") {
		t.Error("Contains not idempotent")
	}
}

func TestThreadSafeSmoke(t *testing.T) {
	tr := NewThreadSafe()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				w := fmt.Sprintf("word%d_%d", id, j)
				tr.Insert(w)
				if !tr.Contains(w) {
					t.Errorf("Contains(%q) = false right after insert", w)
				}
				tr.Suggest(fmt.Sprintf("word%d", id), 5)
				tr.SearchRanked("word", 3)
			}
		}(i)
	}
	wg.Wait()

	if got := tr.Len(); got != 800 {
		t.Errorf("Len = %d after concurrent inserts, want 800", got)
	}
}
