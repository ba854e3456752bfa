package internal

import (
	"log"
	"os"
)

// Level is the logger verbosity threshold
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
)

// Logger writes leveled engine diagnostics through the standard logger.
// The engine logs sparingly: drift verdicts at info, degraded inputs at
// warn, lost collaborator writes at error.
type Logger struct {
	level Level
}

// NewLogger creates a logger with an explicit verbosity threshold
func NewLogger(level Level) *Logger {
	return &Logger{level: level}
}

// NewDefaultLogger reads the threshold from LOG_LEVEL (ERROR, WARN or
// INFO); unset or unrecognized values keep the INFO default.
func NewDefaultLogger() *Logger {
	switch os.Getenv("LOG_LEVEL") {
	case "ERROR":
		return NewLogger(LevelError)
	case "WARN":
		return NewLogger(LevelWarn)
	default:
		return NewLogger(LevelInfo)
	}
}

// Error logs failures that were absorbed rather than returned
func (l *Logger) Error(format string, args ...interface{}) {
	if l.level >= LevelError {
		log.Printf("[ERROR] "+format, args...)
	}
}

// Warn logs conditions that degrade results without stopping them
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.level >= LevelWarn {
		log.Printf("[WARN] "+format, args...)
	}
}

// Info logs notable engine outcomes
func (l *Logger) Info(format string, args ...interface{}) {
	if l.level >= LevelInfo {
		log.Printf("[INFO] "+format, args...)
	}
}

// Global logger instance
var DefaultLogger = NewDefaultLogger()
