package main

import (
	"testing"

	"github.com/lgbarn/chessai-client/internal/config"
)

func TestApplyFlags(t *testing.T) {
	oldAddr, oldDepth := *addr, *depth
	defer func() { *addr, *depth = oldAddr, oldDepth }()
	*addr = "127.0.0.1:8080"
	*depth = 2

	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.Server.Addr != "127.0.0.1:8080" {
		t.Errorf("Server.Addr = %q; want 127.0.0.1:8080", cfg.Server.Addr)
	}
	if cfg.Game.Depth != 2 {
		t.Errorf("Depth = %d; want 2", cfg.Game.Depth)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
