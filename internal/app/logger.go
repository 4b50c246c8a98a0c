package app

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// NewLogger builds the process logger. Unknown levels fall back to info.
func NewLogger(w io.Writer, level string, environment string) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := log.Options{ReportTimestamp: true}
	if strings.EqualFold(environment, "production") {
		opts.Formatter = log.JSONFormatter
	}
	logger := log.NewWithOptions(w, opts)

	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}
