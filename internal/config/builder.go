package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithInitialNotation sets the starting position.
func (b *ConfigBuilder) WithInitialNotation(notation string) *ConfigBuilder {
	b.cfg.Game.InitialNotation = notation
	return b
}

// WithColour sets the human player's colour.
func (b *ConfigBuilder) WithColour(colour string) *ConfigBuilder {
	b.cfg.Game.Colour = colour
	return b
}

// WithStartSide sets the side to move in the starting position.
func (b *ConfigBuilder) WithStartSide(side string) *ConfigBuilder {
	b.cfg.Game.StartSide = side
	return b
}

// WithDepth sets the engine search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Game.Depth = depth
	return b
}

// WithLogDir sets the directory move logs are written to.
func (b *ConfigBuilder) WithLogDir(dir string) *ConfigBuilder {
	b.cfg.Log.Dir = dir
	return b
}

// WithLogName sets the move log file name.
func (b *ConfigBuilder) WithLogName(name string) *ConfigBuilder {
	b.cfg.Log.Name = name
	return b
}

// WithEnginePath sets the UCI engine binary.
func (b *ConfigBuilder) WithEnginePath(path string) *ConfigBuilder {
	b.cfg.Engine.Path = path
	return b
}

// WithListenAddr sets the HTTP listen address.
func (b *ConfigBuilder) WithListenAddr(addr string) *ConfigBuilder {
	b.cfg.Server.Addr = addr
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithLogOutput sets the diagnostic log writer.
func (b *ConfigBuilder) WithLogOutput(w io.Writer) *ConfigBuilder {
	b.cfg.LogOutput = w
	return b
}
