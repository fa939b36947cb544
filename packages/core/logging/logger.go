// Package logging configures the structured logger used by the CLI.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Options controls logger construction.
type Options struct {
	Verbose bool
	NoColor bool
	Writer  io.Writer // defaults to os.Stderr
}

// New returns a logrus logger writing text lines. Only warnings and errors
// are emitted unless Verbose is set, in which case debug output is enabled.
func New(opts Options) *logrus.Logger {
	logger := logrus.New()

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:    opts.NoColor,
		DisableTimestamp: !opts.Verbose,
	})

	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}

// Discard returns a logger that drops everything, for tests and library use.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
