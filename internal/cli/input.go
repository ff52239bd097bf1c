// Package cli handles cmd line input for testing and debugging the engine.
package cli

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bastiangx/trieserve/internal/utils"
	"github.com/bastiangx/trieserve/pkg/suggest"
	"github.com/charmbracelet/log"
)

// InputHandler reads input from stdin and answers with suggestions. Plain
// input runs a prefix completion; slash commands reach the other operations:
//
//	/search <query>     ranked fuzzy search
//	/has <word>         exact containment check
//	/add <word> [freq]  insert a word
//	/stats              dictionary statistics
type InputHandler struct {
	completer       suggest.ICompleter
	minPrefixLength int
	maxPrefixLength int
	suggestLimit    int
	noFilter        bool
	reader          *bufio.Reader
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(completer suggest.ICompleter, minLength, maxLength, limit int, noFilter bool) *InputHandler {
	return &InputHandler{
		completer:       completer,
		minPrefixLength: minLength,
		maxPrefixLength: maxLength,
		suggestLimit:    limit,
		noFilter:        noFilter,
		reader:          bufio.NewReader(os.Stdin),
	}
}

// Start begins the interface loop. It reads a line from stdin, trims it and
// hands it to handleInput, until stdin closes.
func (h *InputHandler) Start() error {
	log.Print("trieserve CLI")
	log.Print("type a prefix and press Enter; /search, /has, /add, /stats for other ops (Ctrl+C to exit):")

	for {
		log.Print("> ")
		line, err := h.reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

func (h *InputHandler) handleInput(line string) {
	if strings.HasPrefix(line, "/") {
		h.handleCommand(line)
		return
	}
	h.handleComplete(line)
}

func (h *InputHandler) handleCommand(line string) {
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "/search":
		if len(args) == 0 {
			log.Error("usage: /search <query>")
			return
		}
		h.handleSearch(args[0])
	case "/has":
		if len(args) == 0 {
			log.Error("usage: /has <word>")
			return
		}
		log.Printf("%s: %v", args[0], h.completer.Contains(args[0]))
	case "/add":
		if len(args) == 0 {
			log.Error("usage: /add <word> [freq]")
			return
		}
		freq := 1
		if len(args) > 1 {
			parsed, err := strconv.Atoi(args[1])
			if err != nil || parsed < 1 {
				log.Errorf("bad frequency %q", args[1])
				return
			}
			freq = parsed
		}
		h.completer.AddWord(args[0], freq)
		log.Printf("added %q (freq %d)", args[0], freq)
	case "/stats":
		for k, v := range h.completer.Stats() {
			log.Printf("%s: %d", k, v)
		}
	default:
		log.Errorf("unknown command: %s", cmd)
	}
}

// handleComplete validates a prefix and prints its completions.
func (h *InputHandler) handleComplete(prefix string) {
	if len(prefix) < h.minPrefixLength {
		log.Errorf("Prefix too short: %s", prefix)
		return
	}
	if len(prefix) > h.maxPrefixLength {
		log.Errorf("Prefix too long: %s", prefix)
		return
	}
	if !h.noFilter && !utils.IsValidInput(prefix) {
		log.Infof("No results found for prefix: '%s'", prefix)
		return
	}

	start := time.Now()
	suggestions := h.completer.Complete(prefix, h.suggestLimit)
	elapsed := time.Since(start)

	if len(suggestions) == 0 {
		log.Infof("No results found for prefix: '%s'", prefix)
		return
	}
	for i, s := range suggestions {
		log.Printf("%2d. %s (%d)", i+1, s.Word, s.Frequency)
	}
	log.Debugf("%d results in %v", len(suggestions), elapsed)
}

// handleSearch prints ranked fuzzy matches for query.
func (h *InputHandler) handleSearch(query string) {
	start := time.Now()
	matches := h.completer.Search(query, h.suggestLimit)
	elapsed := time.Since(start)

	if len(matches) == 0 {
		log.Infof("No matches for query: '%s'", query)
		return
	}
	for i, m := range matches {
		log.Printf("%2d. %s (%d)", i+1, m.Word, m.Frequency)
	}
	log.Debugf("%d matches in %v", len(matches), elapsed)
}
