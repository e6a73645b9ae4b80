package config

import (
	"github.com/lgbarn/chessai-client/internal/chess"
	"github.com/lgbarn/chessai-client/internal/engine"
	"github.com/lgbarn/chessai-client/internal/search"
)

// GameConfig holds settings for a single game.
type GameConfig struct {
	// InitialNotation is the starting position.
	InitialNotation string

	// Colour is the human player's colour, "white" or "black".
	Colour string

	// StartSide is the side to move in InitialNotation, "white" or "black".
	// The notation parser does not read it, so it is configured here.
	StartSide string

	// Depth is the engine search depth.
	Depth int
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		InitialNotation: engine.InitialFEN,
		Colour:          "white",
		StartSide:       "white",
		Depth:           search.DefaultDepth,
	}
}

// PlayerColour returns the parsed player colour.
func (g *GameConfig) PlayerColour() (chess.Colour, error) {
	return chess.ParseColour(g.Colour)
}

// StartColour returns the parsed side to move at the start.
func (g *GameConfig) StartColour() (chess.Colour, error) {
	return chess.ParseColour(g.StartSide)
}

// Validate checks colours and the starting notation.
func (g *GameConfig) Validate() error {
	if _, err := g.PlayerColour(); err != nil {
		return err
	}
	if _, err := g.StartColour(); err != nil {
		return err
	}
	if _, _, err := engine.Parse(g.InitialNotation); err != nil {
		return err
	}
	return nil
}

// LogConfig holds settings for the persisted move log.
type LogConfig struct {
	// Dir is the directory log files are written to.
	Dir string

	// Name is the log file name; empty means a timestamped default.
	Name string
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{Dir: "logs"}
}

// EngineConfig holds settings for the external search engine.
type EngineConfig struct {
	// Path is the UCI engine binary.
	Path string
}

// NewEngineConfig creates an EngineConfig with default values.
func NewEngineConfig() *EngineConfig {
	return &EngineConfig{Path: search.DefaultEnginePath}
}

// ServerConfig holds settings for the HTTP front end.
type ServerConfig struct {
	// Addr is the listen address.
	Addr string
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{Addr: ":3000"}
}
