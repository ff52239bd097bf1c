// Package suggest is the completion engine on top of the core trie: frequency
// ranked prefix suggestions, ranked fuzzy search, capitalization handling and
// a hot-words cache for common lookups.
package suggest

// ICompleter defines the interface for word completion engines
type ICompleter interface {
	// Complete returns suggestions for a given prefix with a limit
	Complete(prefix string, limit int) []Suggestion

	// Search returns fuzzy matches for query ranked by edit-distance score
	Search(query string, limit int) []Suggestion

	// Contains reports whether word is stored as a complete word
	Contains(word string) bool

	// AddWord adds a word with its frequency to the completer
	AddWord(word string, frequency int)

	// Stats returns statistics about the loaded dictionary
	Stats() map[string]int
}
