// Package logging configures the application's zerolog output.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a logger writing to w with the given level and format.
// Unknown level names fall back to info; format "json" emits structured
// JSON, anything else a console writer.
func New(w io.Writer, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Default returns a console logger on stderr at info level.
func Default() zerolog.Logger {
	return New(os.Stderr, "info", "console")
}
