// Package logging builds the zerolog logger used by the command line tool.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a human readable logger writing to w. verbose enables debug
// output.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    !isTerminal(w),
	}
	return zerolog.New(out).Level(level).With().Timestamp().Str("component", "versionstamp").Logger()
}
