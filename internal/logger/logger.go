package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w at the given level
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
}

// Tracer returns a logger for scanner and parser traces. It only exists at
// debug level; above that the traces are skipped entirely.
func Tracer(l *log.Logger) *log.Logger {
	if l == nil || l.GetLevel() > log.DebugLevel {
		return nil
	}
	return l.WithPrefix("tinymark")
}

// Discard returns a logger that discards all output
func Discard() *log.Logger {
	return New(io.Discard, log.FatalLevel)
}
