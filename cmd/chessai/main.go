// chessai is a terminal chess client that plays against a UCI engine.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessai-client/internal/config"
	"github.com/lgbarn/chessai-client/internal/search"
	"github.com/lgbarn/chessai-client/internal/session"
)

const programVersion = "0.1.0"

var version = flag.Bool("version", false, "Print version and exit")

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("chessai version %s\n", programVersion)
		os.Exit(0)
	}

	os.Exit(run())
}

// run plays one game and returns the process exit code.
func run() int {
	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	log := cfg.Logger()

	var searcher search.Searcher
	if !*noEngine {
		eng, err := search.NewUCI(cfg.Engine.Path, log)
		if err != nil {
			log.Warn().Err(err).Msg("engine unavailable, playing without one")
		} else {
			defer eng.Close()
			searcher = eng
		}
	}

	game, err := session.New(cfg, searcher, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintf(os.Stdout, "game %s, moves logged to %s\n", game.ID(), game.LogPath())

	c := newClient(game, os.Stdout, log)
	c.unicode = *unicode
	c.autoReply = searcher != nil
	if err := c.run(os.Stdin); err != nil {
		log.Error().Err(err).Msg("reading input")
		return 1
	}
	return 0
}
