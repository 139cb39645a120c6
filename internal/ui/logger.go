package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelSuccess
	LevelWarn
	LevelError
)

// Logger provides leveled, colored output for the CLI
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
}

var defaultLogger = &Logger{
	out: os.Stdout,
}

// SetVerbose enables or disables verbose (debug) output
func SetVerbose(v bool) {
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()
	defaultLogger.verbose = v
}

// IsVerbose returns whether verbose mode is enabled
func IsVerbose() bool {
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()
	return defaultLogger.verbose
}

// SetOutput sets the output writer
func SetOutput(w io.Writer) {
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()
	defaultLogger.out = w
}

// levelPrefix returns the prefix for a log level
func levelPrefix(level LogLevel) string {
	switch level {
	case LevelDebug:
		return Colorize("[DEBUG]", Cyan)
	case LevelInfo:
		return Colorize("[INFO]", Blue)
	case LevelSuccess:
		return Colorize("[OK]", Green)
	case LevelWarn:
		return Colorize("[WARN]", Yellow)
	case LevelError:
		return Colorize("[ERROR]", Red)
	default:
		return "[LOG]"
	}
}

// log writes a log message with the given level
func log(level LogLevel, format string, args ...any) {
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()

	// Skip debug messages unless verbose is enabled
	if level == LevelDebug && !defaultLogger.verbose {
		return
	}

	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	fmt.Fprintf(defaultLogger.out, "%s %s\n", levelPrefix(level), msg)
}

// Debug logs a debug message (only shown with --verbose)
func Debug(format string, args ...any) {
	log(LevelDebug, format, args...)
}

// Infof logs an informational message
func Infof(format string, args ...any) {
	log(LevelInfo, format, args...)
}

// Successf logs a success message
func Successf(format string, args ...any) {
	log(LevelSuccess, format, args...)
}

// Warnf logs a warning message
func Warnf(format string, args ...any) {
	log(LevelWarn, format, args...)
}

// Errorf logs an error message
func Errorf(format string, args ...any) {
	log(LevelError, format, args...)
}

// Step logs a step in a process with an arrow prefix
func Step(format string, args ...any) {
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()

	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	fmt.Fprintf(defaultLogger.out, "  %s %s\n", Colorize("→", Cyan), msg)
}
