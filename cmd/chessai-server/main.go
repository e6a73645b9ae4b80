// chessai-server serves a game against a UCI engine over HTTP and websockets.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/chessai-client/internal/config"
	"github.com/lgbarn/chessai-client/internal/search"
	"github.com/lgbarn/chessai-client/internal/server"
	"github.com/lgbarn/chessai-client/internal/session"
)

func main() {
	flag.Parse()
	os.Exit(run())
}

// run serves until interrupted and returns the process exit code.
func run() int {
	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	log := cfg.Logger()

	eng, err := search.NewUCI(cfg.Engine.Path, log)
	if err != nil {
		log.Error().Err(err).Msg("starting engine")
		return 1
	}
	defer eng.Close()

	game, err := session.New(cfg, eng, log)
	if err != nil {
		log.Error().Err(err).Msg("starting game")
		return 1
	}

	app := server.New(game, log).App()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		log.Info().Msg("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("addr", cfg.Server.Addr).Str("game", game.ID().String()).Msg("listening")
	if err := app.Listen(cfg.Server.Addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		return 1
	}
	return 0
}
