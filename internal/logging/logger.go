// Package logging wraps a process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	logger     = zerolog.New(io.Discard)
	loggerLock sync.RWMutex
	logFile    *os.File
)

// UseConsole sends human-readable log lines to w (usually stderr)
func UseConsole(w io.Writer, levelStr string) {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
	}
	set(zerolog.New(output), levelStr)
}

// UseFile appends JSON log lines to path, creating its directory.
// The TUI owns the terminal, so it logs here instead of stderr.
func UseFile(path, levelStr string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	loggerLock.Lock()
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	loggerLock.Unlock()

	set(zerolog.New(f), levelStr)
	return nil
}

// UseWriter sends JSON log lines to w; used by tests
func UseWriter(w io.Writer, levelStr string) {
	set(zerolog.New(w), levelStr)
}

// Close closes the log file opened by UseFile, if any
func Close() error {
	loggerLock.Lock()
	defer loggerLock.Unlock()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	logger = zerolog.New(io.Discard)
	return err
}

func set(l zerolog.Logger, levelStr string) {
	loggerLock.Lock()
	logger = l.Level(parseLogLevel(levelStr)).With().Timestamp().Logger()
	loggerLock.Unlock()
}

// SetLevel sets the global log level at runtime
func SetLevel(levelStr string) {
	loggerLock.Lock()
	logger = logger.Level(parseLogLevel(levelStr))
	loggerLock.Unlock()
}

// parseLogLevel converts a string log level to zerolog.Level
func parseLogLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func current() *zerolog.Logger {
	loggerLock.RLock()
	defer loggerLock.RUnlock()
	l := logger
	return &l
}

// Debug logs a debug message
func Debug() *zerolog.Event {
	return current().Debug()
}

// Info logs an info message
func Info() *zerolog.Event {
	return current().Info()
}

// Warn logs a warning message
func Warn() *zerolog.Event {
	return current().Warn()
}

// Error logs an error message
func Error() *zerolog.Event {
	return current().Error()
}
