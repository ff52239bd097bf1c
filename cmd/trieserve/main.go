// Copyright 2025 The TrieServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main runs the trieserve word lookup server and CLI.

TrieServe keeps a character trie in memory and serves exact containment
checks, frequency-ranked prefix completions, and edit-distance ranked fuzzy
search over it. It can operate as a MessagePack IPC server over stdin/stdout
for integration with editors and other processes, or as an interactive CLI
for testing and debugging.

# Usage

Start the server with a wordlist:

	trieserve -data words.txt

Run in CLI mode with debug logging:

	trieserve -c -d -data words.txt -limit 10

The wordlist is plain text, one "word frequency" pair per line; the frequency
column is optional and '#' starts a comment.

# Configuration

Runtime configuration is a TOML file (custom path via -config, default
~/.config/trieserve/config.toml, created with defaults when missing):

	[server]
	max_limit = 64
	min_prefix = 1
	max_prefix = 60
	enable_filter = true
	thread_safe = true

	[dict]
	path = "words.txt"
	max_words = 50000

# IPC Protocol

Requests and responses are msgpack values on stdin/stdout. See pkg/server for
the full action list; a completion exchange looks like:

	{"id": "r1", "a": "complete", "p": "hel", "l": 20}
	{"id": "r1", "status": "ok", "s": [{"w": "hello", "r": 1, "f": 150}], "c": 1, "t": 145}
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/trieserve/internal/cli"
	"github.com/bastiangx/trieserve/pkg/config"
	"github.com/bastiangx/trieserve/pkg/dictionary"
	"github.com/bastiangx/trieserve/pkg/server"
	"github.com/bastiangx/trieserve/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0"
	AppName = "trieserve"
	gh      = "https://github.com/bastiangx/trieserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires flags, config, dictionary loading and the chosen mode together.
// The actual logic lives in the packages it calls.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	wordlist := flag.String("data", "", "Path to a wordlist file (word [frequency] per line)")
	configPath := flag.String("config", "", "Path to a config.toml (default: ~/.config/trieserve/config.toml)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaults.CLI.DefaultLimit, "Number of suggestions to return")
	minPrefix := flag.Int("prmin", defaults.CLI.DefaultMinLen, "Minimum prefix length for suggestions")
	maxPrefix := flag.Int("prmax", defaults.CLI.DefaultMaxLen, "Maximum prefix length for suggestions")
	noFilter := flag.Bool("no-filter", defaults.CLI.DefaultNoFilter, "Disable input filtering (DBG only)")
	wordCap := flag.Int("words", defaults.Dict.MaxWords, "Maximum number of words to load (use 0 for all words)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}
	log.SetOutput(os.Stderr)

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if activePath != "" {
		log.Debugf("Using config file: (%s)", activePath)
	}

	completer := suggest.NewCompleter(appConfig.Server.ThreadSafe)
	completer.SetThresholds(appConfig.Dict.MinFreqThreshold, appConfig.Dict.MinFreqShortPrefix)

	dataPath := *wordlist
	if dataPath == "" {
		dataPath = appConfig.Dict.Path
	}
	if dataPath != "" {
		loaded, err := dictionary.LoadFile(dataPath, *wordCap, completer.AddWord)
		if err != nil {
			log.Fatalf("Failed to load wordlist: %v", err)
		}
		log.Debugf("loaded %d words from (%s)", loaded, dataPath)
	} else {
		log.Warn("No wordlist specified, starting with an empty trie...")
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"minPrefix", *minPrefix,
			"maxPrefix", *maxPrefix,
			"limit", *limit,
			"noFilter", *noFilter)

		inputHandler := cli.NewInputHandler(completer, *minPrefix, *maxPrefix, *limit, *noFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	showStartupInfo(dataPath)

	srv := server.NewServer(completer, appConfig, os.Stdin, os.Stdout)
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// printVersion renders the version card.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ TrieServe ] Trie lookups, completions and fuzzy search!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dataPath string) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	if dataPath != "" {
		log.Infof("wordlist: ( %s )", dataPath)
	}
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
