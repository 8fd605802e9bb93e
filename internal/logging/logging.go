// Package logging configures the application logger.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// New creates a logger writing structured events to w. Unknown level
// strings fall back to info.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Console creates a human-readable logger for terminal use.
func Console(w io.Writer, level string) zerolog.Logger {
	return New(zerolog.ConsoleWriter{Out: w}, level)
}
