package trie

// Bonus weights for ranked search. Length and frequency are additive on top
// of edit-distance similarity, so a longer or much more frequent word can
// outrank a closer match. That is the intended policy, not an approximation
// of a better relevance measure.
const (
	lengthBonusWeight    = 0.02
	frequencyBonusWeight = 0.05
)

// scoreWord ranks word against query. Similarity is 1/(1+d) where d is the
// Levenshtein distance, so it peaks at 1.0 for an exact match.
func scoreWord(query, word string, freq uint32) float64 {
	d := levenshtein(query, word)

	sim := 1.0 / (1.0 + float64(d))
	lenBonus := float64(len(word)) * lengthBonusWeight
	freqBonus := float64(freq) * frequencyBonusWeight

	return sim + lenBonus + freqBonus
}

// levenshtein computes the classic edit distance (insertions, deletions,
// substitutions) between two byte strings using the two-row DP table:
// O(len(a)*len(b)) time, O(len(b)) extra space.
func levenshtein(a, b string) int {
	m, n := len(a), len(b)
	if m == 0 {
		return n
	}
	if n == 0 {
		return m
	}

	prev := make([]int, n+1)
	cur := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		cur[0] = i
		for j := 1; j <= n; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min3(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}

	return prev[n]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
