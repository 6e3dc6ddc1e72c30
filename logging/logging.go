// Package logging provides log-level constants and the minimal leveled logger
// used for plan diagnostics.
package logging

import (
	"fmt"
	"io"
	"log"
)

const (
	// TraceLevel is the most verbose level, for per-node construction detail
	TraceLevel = iota
	// DebugLevel covers construction milestones such as plan freezing
	DebugLevel
	// InfoLevel covers routine progress messages
	InfoLevel
	// WarnLevel covers problems reported to the caller, such as failed validation
	WarnLevel
	// ErrorLevel covers failures of a construction call
	ErrorLevel
	// FatalLevel covers failures the host process cannot continue from
	FatalLevel
)

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}

// Logger gates log messages by level. A nil Logger discards everything.
type Logger struct {
	level int
	l     *log.Logger
}

// NewLogger returns a Logger emitting messages at or above the given level
func NewLogger(level int, out io.Writer) *Logger {
	return &Logger{level: level, l: log.New(out, "", log.LstdFlags)}
}

// Logf logs a formatted message at the given level
func (l *Logger) Logf(level int, format string, args ...any) {
	if l == nil || level < l.level {
		return
	}
	l.l.Printf("[%s] %s", LogLevelToString(level), fmt.Sprintf(format, args...))
}
