package logger

import (
	"io"
	"os"
	"sync"
)

// Log levels used across the application.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	// globalLogger holds the process logger shared by the server and the CLI.
	globalLogger *Logger
	once         sync.Once
)

// Get returns the process logger configured with the provided level.
// Only the first call decides the level; later calls get the same instance.
func Get(level string) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(os.Stdout, level)
	})
	return globalLogger
}

// New returns a standalone logger writing console lines to w. The CLI uses
// it to keep diagnostics off the stream carrying command output.
func New(w io.Writer, level string) *Logger {
	return newZapLogger(w, level)
}

// Nop returns a logger that discards everything. Used as the default for
// library types constructed without a logger and throughout tests.
func Nop() *Logger {
	return &Logger{SugaredLogger: newNopSugar()}
}
