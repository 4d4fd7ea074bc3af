// Package logging sets up the diagnostic logger shared by all commands.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// EnvLevel names the environment variable holding the log level.
const EnvLevel = "MORSE_LOG_LEVEL"

var (
	logger zerolog.Logger
	once   sync.Once
)

// New returns a console logger writing to w. Unknown or empty levels fall back to warn.
func New(w io.Writer, level string) zerolog.Logger {
	level = strings.ToLower(strings.TrimSpace(level))
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}
	return zerolog.New(consoleWriter).Level(lvl).With().Timestamp().Logger()
}

// L returns the process logger, writing to stderr at the level from MORSE_LOG_LEVEL.
func L() *zerolog.Logger {
	once.Do(func() {
		logger = New(os.Stderr, os.Getenv(EnvLevel))
	})
	return &logger
}
