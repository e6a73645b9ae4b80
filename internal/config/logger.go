package config

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Logger builds the diagnostic logger described by c. Terminal output is
// rendered for humans; any other writer receives JSON lines.
func (c *Config) Logger() zerolog.Logger {
	out := c.LogOutput
	if out == nil {
		out = io.Discard
	}
	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		out = zerolog.ConsoleWriter{Out: f, TimeFormat: time.Kitchen}
	}
	return zerolog.New(out).Level(levelFor(c.Verbosity)).With().Timestamp().Logger()
}

func levelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}
