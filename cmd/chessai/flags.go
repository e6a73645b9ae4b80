// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessai-client/internal/config"
)

var (
	// Game options
	initialFEN = flag.String("fen", "", "Starting position (default: standard initial position)")
	colour     = flag.String("colour", "white", "Colour played by the human: white or black")
	startSide  = flag.String("start", "white", "Side to move in the starting position")
	depth      = flag.Int("depth", 4, "Engine search depth (1-7)")

	// Move log
	logName = flag.String("log", "", "Move log name; an existing log is resumed (default: timestamped)")
	logDir  = flag.String("logdir", "logs", "Directory move logs are written to")

	// Engine
	enginePath = flag.String("engine", "stockfish", "UCI engine binary")
	noEngine   = flag.Bool("noengine", false, "Play without an engine (both sides by hand)")

	// Display
	unicode = flag.Bool("unicode", false, "Draw pieces with chess glyphs")

	// Diagnostics
	verbose = flag.Bool("v", false, "Verbose (debug) logging")
	quiet   = flag.Bool("q", false, "Only log warnings and errors")
)

// applyFlags copies command-line values onto cfg.
func applyFlags(cfg *config.Config) {
	applyGameFlags(cfg)
	applyLogFlags(cfg)

	cfg.Engine.Path = *enginePath

	switch {
	case *verbose:
		cfg.Verbosity = 2
	case *quiet:
		cfg.Verbosity = 0
	}
}

func applyGameFlags(cfg *config.Config) {
	if *initialFEN != "" {
		cfg.Game.InitialNotation = *initialFEN
	}
	cfg.Game.Colour = *colour
	cfg.Game.StartSide = *startSide
	cfg.Game.Depth = *depth
}

func applyLogFlags(cfg *config.Config) {
	cfg.Log.Dir = *logDir
	cfg.Log.Name = *logName
}
