// Package logger provides the verbose-gated logging backend for the pipeline.
package logger

import (
	"log"
	"os"
)

// StdLogger writes to stderr via Go's log package. Debug and Info lines only
// appear in verbose mode; warnings and errors always print, since they carry
// the diagnostic context for a failed invocation.
type StdLogger struct {
	verbose bool
	std     *log.Logger
}

// NewStd creates a StdLogger.
func NewStd(verbose bool) *StdLogger {
	return &StdLogger{
		verbose: verbose,
		std:     log.New(os.Stderr, "", 0),
	}
}

func (l *StdLogger) Debug(msg string, fields map[string]interface{}) {
	if !l.verbose {
		return
	}
	l.std.Println("[DEBUG]", msg, render(fields))
}

func (l *StdLogger) Info(msg string, fields map[string]interface{}) {
	if !l.verbose {
		return
	}
	l.std.Println("[INFO]", msg, render(fields))
}

func (l *StdLogger) Warn(msg string, fields map[string]interface{}) {
	l.std.Println("[WARN]", msg, render(fields))
}

func (l *StdLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.std.Println("[ERROR]", msg, err, render(fields))
}

func render(fields map[string]interface{}) interface{} {
	if len(fields) == 0 {
		return ""
	}
	return fields
}
