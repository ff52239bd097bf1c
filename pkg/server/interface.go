/*
Package server implements msgpack IPC for trie lookup services.

The server reads binary msgpack requests from stdin and writes msgpack
responses to stdout, one value per message. Each request carries a client
supplied ID that is echoed back, an action, and the fields that action needs.

Actions:

	"complete"  prefix suggestions ranked by frequency    (uses p, l)
	"search"    ranked fuzzy search over the whole trie   (uses q, l)
	"contains"  exact word lookup                         (uses w)
	"add"       insert a word, optionally with frequency  (uses w, f)
	"stats"     dictionary statistics
	"ping"      liveness check

A completion exchange looks like:

	{"id": "req_001", "a": "complete", "p": "ame", "l": 24}
	{"id": "req_001", "status": "ok", "s": [{"w": "america", "r": 1, "f": 920}], "c": 1, "t": 145}

and a fuzzy search like:

	{"id": "req_002", "a": "search", "q": "helo", "l": 3}

Timing (t) is reported in microseconds. Malformed or unknown requests get an
ErrorReply with a 400 code; internal failures use 500. Absence is never an
error: "contains" on a missing word answers ok=false, "complete" on a dead
prefix answers an empty suggestion list.
*/
package server

// Request is the single inbound message shape; Action selects the operation
// and decides which other fields are read.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"a"`
	Prefix string `msgpack:"p,omitempty"`
	Query  string `msgpack:"q,omitempty"`
	Word   string `msgpack:"w,omitempty"`
	Freq   int    `msgpack:"f,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

// SuggestionEntry is one ranked result row.
type SuggestionEntry struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
	Freq int    `msgpack:"f,omitempty"`
}

// Response answers complete, search, contains, add, stats and ping requests.
type Response struct {
	ID          string            `msgpack:"id"`
	Status      string            `msgpack:"status"`
	Suggestions []SuggestionEntry `msgpack:"s,omitempty"`
	Count       int               `msgpack:"c,omitempty"`
	Found       bool              `msgpack:"ok,omitempty"`
	Stats       map[string]int    `msgpack:"stats,omitempty"`
	TimeTaken   int64             `msgpack:"t,omitempty"`
}

// ErrorReply holds basic error information for failed requests
type ErrorReply struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
