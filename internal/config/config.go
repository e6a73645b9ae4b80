// Package config provides configuration for the chess client.
package config

import (
	"io"
	"os"

	"github.com/lgbarn/chessai-client/internal/errors"
	"github.com/lgbarn/chessai-client/internal/search"
)

// Config holds all program configuration.
type Config struct {
	// Grouped configuration
	Game   *GameConfig
	Log    *LogConfig
	Engine *EngineConfig
	Server *ServerConfig

	// Verbosity: 0=warnings only, 1=info, 2=debug
	Verbosity int

	// Where diagnostic logging goes
	LogOutput io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Game:      NewGameConfig(),
		Log:       NewLogConfig(),
		Engine:    NewEngineConfig(),
		Server:    NewServerConfig(),
		Verbosity: 1,
		LogOutput: os.Stderr,
	}
}

// Validate checks every value that could make construction of a game fail
// part way through.
func (c *Config) Validate() error {
	if c.Game == nil || c.Log == nil || c.Engine == nil || c.Server == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "missing config section")
	}
	if err := c.Game.Validate(); err != nil {
		return err
	}
	if c.Game.Depth < search.MinDepth || c.Game.Depth > search.MaxDepth {
		return errors.Wrapf(errors.ErrInvalidConfig, "depth %d not in %d..%d",
			c.Game.Depth, search.MinDepth, search.MaxDepth)
	}
	if c.Log.Dir == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "empty log directory")
	}
	return nil
}
