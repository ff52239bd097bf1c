// Package dictionary loads word frequency lists into the completion engine.
//
// The format is one entry per line: a word optionally followed by whitespace
// and an integer frequency. Lines starting with '#' and blank lines are
// skipped; malformed frequencies are logged and default to 1.
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// AddFunc receives each parsed word with its frequency.
type AddFunc func(word string, frequency int)

// LoadFile reads the wordlist at path and hands every entry to add, capped at
// maxWords entries when maxWords > 0. It returns the number of words loaded.
func LoadFile(path string, maxWords int, add AddFunc) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open wordlist: %w", err)
	}
	defer file.Close()

	loaded := 0
	lineNo := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		word, freq := parseLine(line, lineNo)
		if word == "" {
			continue
		}
		add(word, freq)
		loaded++

		if maxWords > 0 && loaded >= maxWords {
			log.Debugf("wordlist cap reached at %d words", maxWords)
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return loaded, fmt.Errorf("read wordlist: %w", err)
	}

	log.Debugf("loaded %d words from %s", loaded, path)
	return loaded, nil
}

// parseLine splits "word [frequency]". The frequency defaults to 1 when
// missing or unparsable.
func parseLine(line string, lineNo int) (string, int) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", 0
	}
	word := fields[0]
	freq := 1
	if len(fields) > 1 {
		parsed, err := strconv.Atoi(fields[1])
		if err != nil || parsed < 1 {
			log.Warnf("line %d: bad frequency %q for word %q, using 1", lineNo, fields[1], word)
		} else {
			freq = parsed
		}
	}
	return word, freq
}

// Count returns the number of loadable entries in the wordlist at path
// without feeding them anywhere. Used for startup reporting.
func Count(path string) (int, error) {
	return LoadFile(path, 0, func(string, int) {})
}
