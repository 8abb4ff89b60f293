// Package logger configures the process-wide zerolog logger.
//
// All logging goes to stderr; stdout is reserved for the launcher feedback
// document.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a console logger at warn level, or debug when verbose.
func New(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
