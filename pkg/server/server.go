package server

import (
	"errors"
	"io"
	"time"

	"github.com/bastiangx/trieserve/internal/utils"
	"github.com/bastiangx/trieserve/pkg/config"
	"github.com/bastiangx/trieserve/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for trie lookups.
type Server struct {
	completer suggest.ICompleter
	cfg       *config.Config
	decoder   *msgpack.Decoder
	encoder   *msgpack.Encoder
}

// NewServer creates a server speaking msgpack over the given streams. main
// passes stdin/stdout; tests pass in-memory buffers.
func NewServer(completer suggest.ICompleter, cfg *config.Config, in io.Reader, out io.Writer) *Server {
	return &Server{
		completer: completer,
		cfg:       cfg,
		decoder:   msgpack.NewDecoder(in),
		encoder:   msgpack.NewEncoder(out),
	}
}

// Start reads requests until EOF. A decode failure on a message is reported
// to the client and the loop continues; only transport errors stop it.
func (s *Server) Start() error {
	log.Debug("starting IPC loop")
	s.send(Response{Status: "ready"})

	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug("client disconnected")
				return nil
			}
			log.Errorf("decoding request: %v", err)
			s.sendError("", "invalid msgpack request", 400)
			continue
		}
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req Request) {
	switch req.Action {
	case "complete":
		s.handleComplete(req)
	case "search":
		s.handleSearch(req)
	case "contains":
		s.send(Response{ID: req.ID, Status: "ok", Found: s.completer.Contains(req.Word)})
	case "add":
		s.handleAdd(req)
	case "stats":
		s.send(Response{ID: req.ID, Status: "ok", Stats: s.completer.Stats()})
	case "ping":
		s.send(Response{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, "unknown action: "+req.Action, 400)
	}
}

func (s *Server) handleComplete(req Request) {
	prefix := req.Prefix
	if prefix == "" {
		s.sendError(req.ID, "missing 'p' parameter", 400)
		return
	}
	if len(prefix) < s.cfg.Server.MinPrefix {
		s.sendError(req.ID, "prefix too short", 400)
		return
	}
	if len(prefix) > s.cfg.Server.MaxPrefix {
		s.sendError(req.ID, "prefix too long", 400)
		return
	}
	if s.cfg.Server.EnableFilter && !utils.IsValidInput(prefix) {
		s.send(Response{ID: req.ID, Status: "ok", Suggestions: []SuggestionEntry{}})
		return
	}

	limit := s.clampLimit(req.Limit, s.cfg.CLI.DefaultLimit)

	start := time.Now()
	suggestions := s.completer.Complete(prefix, limit)
	elapsed := time.Since(start)

	s.send(Response{
		ID:          req.ID,
		Status:      "ok",
		Suggestions: toEntries(suggestions),
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) handleSearch(req Request) {
	if req.Query == "" {
		s.sendError(req.ID, "missing 'q' parameter", 400)
		return
	}
	if len(req.Query) > s.cfg.Server.MaxPrefix {
		s.sendError(req.ID, "query too long", 400)
		return
	}

	limit := s.clampLimit(req.Limit, suggest.DefaultSearchLimit)

	start := time.Now()
	matches := s.completer.Search(req.Query, limit)
	elapsed := time.Since(start)

	s.send(Response{
		ID:          req.ID,
		Status:      "ok",
		Suggestions: toEntries(matches),
		Count:       len(matches),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) handleAdd(req Request) {
	if req.Word == "" {
		s.sendError(req.ID, "missing 'w' parameter", 400)
		return
	}
	freq := req.Freq
	if freq < 1 {
		freq = 1
	}
	s.completer.AddWord(req.Word, freq)
	s.send(Response{ID: req.ID, Status: "ok"})
}

func (s *Server) clampLimit(limit, fallback int) int {
	if limit < 1 {
		limit = fallback
	}
	if limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}
	return limit
}

func toEntries(suggestions []suggest.Suggestion) []SuggestionEntry {
	entries := make([]SuggestionEntry, len(suggestions))
	for i, sg := range suggestions {
		entries[i] = SuggestionEntry{
			Word: sg.Word,
			Rank: uint16(i + 1),
			Freq: sg.Frequency,
		}
	}
	return entries
}

func (s *Server) send(response any) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorReply{ID: id, Error: message, Code: code})
}
