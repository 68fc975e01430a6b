package logger

import (
	"strings"
	"sync"
)

// Log levels accepted in configuration.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	globalLogger *Logger
	once         sync.Once
)

// Get returns the process-wide logger. Only the first call's level is honoured.
func Get(level string) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(strings.ToLower(strings.TrimSpace(level)))
	})
	return globalLogger
}

// Nop returns a logger that discards everything. Used by tests and by
// services constructed without a logger.
func Nop() *Logger {
	return newNopLogger()
}
