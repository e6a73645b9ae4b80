package main

import (
	"testing"

	"github.com/lgbarn/chessai-client/internal/config"
	"github.com/lgbarn/chessai-client/internal/engine"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.Game.InitialNotation != engine.InitialFEN {
		t.Errorf("InitialNotation = %q; want initial position", cfg.Game.InitialNotation)
	}
	if cfg.Game.Depth != 4 {
		t.Errorf("Depth = %d; want 4", cfg.Game.Depth)
	}
	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d; want 1", cfg.Verbosity)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestApplyFlags_Overrides(t *testing.T) {
	const fen = "8/8/8/8/8/8/8/K6k w - - 0 1"
	defer saveRestoreString(initialFEN, fen)()
	defer saveRestoreString(colour, "black")()
	defer saveRestoreInt(depth, 7)()
	defer saveRestoreString(logName, "rematch")()
	defer saveRestoreString(logDir, "/tmp/games")()
	defer saveRestoreString(enginePath, "/opt/engine")()
	defer saveRestoreBool(verbose, true)()

	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.Game.InitialNotation != fen {
		t.Errorf("InitialNotation = %q; want %q", cfg.Game.InitialNotation, fen)
	}
	if cfg.Game.Colour != "black" {
		t.Errorf("Colour = %q; want black", cfg.Game.Colour)
	}
	if cfg.Game.Depth != 7 {
		t.Errorf("Depth = %d; want 7", cfg.Game.Depth)
	}
	if cfg.Log.Name != "rematch" || cfg.Log.Dir != "/tmp/games" {
		t.Errorf("Log = %+v; want rematch in /tmp/games", cfg.Log)
	}
	if cfg.Engine.Path != "/opt/engine" {
		t.Errorf("Engine.Path = %q; want /opt/engine", cfg.Engine.Path)
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d; want 2", cfg.Verbosity)
	}
}

func TestApplyFlags_Quiet(t *testing.T) {
	defer saveRestoreBool(quiet, true)()

	cfg := config.NewConfig()
	applyFlags(cfg)
	if cfg.Verbosity != 0 {
		t.Errorf("Verbosity = %d; want 0", cfg.Verbosity)
	}
}
