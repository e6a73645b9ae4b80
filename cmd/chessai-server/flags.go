// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessai-client/internal/config"
)

var (
	addr       = flag.String("addr", ":3000", "HTTP listen address")
	initialFEN = flag.String("fen", "", "Starting position (default: standard initial position)")
	colour     = flag.String("colour", "white", "Colour played by the human: white or black")
	startSide  = flag.String("start", "white", "Side to move in the starting position")
	depth      = flag.Int("depth", 4, "Engine search depth (1-7)")
	logName    = flag.String("log", "", "Move log name; an existing log is resumed")
	logDir     = flag.String("logdir", "logs", "Directory move logs are written to")
	enginePath = flag.String("engine", "stockfish", "UCI engine binary")
	verbose    = flag.Bool("v", false, "Verbose (debug) logging")
)

// applyFlags copies command-line values onto cfg.
func applyFlags(cfg *config.Config) {
	if *initialFEN != "" {
		cfg.Game.InitialNotation = *initialFEN
	}
	cfg.Game.Colour = *colour
	cfg.Game.StartSide = *startSide
	cfg.Game.Depth = *depth
	cfg.Log.Dir = *logDir
	cfg.Log.Name = *logName
	cfg.Engine.Path = *enginePath
	cfg.Server.Addr = *addr
	if *verbose {
		cfg.Verbosity = 2
	}
}
