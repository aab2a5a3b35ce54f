// Package log provides leveled console logging with color support.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents the severity of a log message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGray   = "\033[90m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
)

// Logger writes leveled, timestamped messages to a console.
type Logger struct {
	mu           sync.Mutex
	level        Level
	output       io.Writer
	colorEnabled bool
}

// New creates a Logger with default settings. Colors are enabled when
// stderr is a TTY.
func New() *Logger {
	return &Logger{
		level:        LevelInfo,
		output:       os.Stderr,
		colorEnabled: isTerminal(os.Stderr),
	}
}

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// SetLevel sets the minimum log level to output.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetOutput sets the output writer.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
}

// SetColorEnabled enables or disables color output.
func (l *Logger) SetColorEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.colorEnabled = enabled
}

func (l *Logger) log(level Level, color, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	timestamp := time.Now().Format("15:04:05")
	message := fmt.Sprintf(format, args...)

	if l.colorEnabled && color != "" {
		fmt.Fprintf(l.output, "%s[%s] [%s] %s%s\n", color, timestamp, level.String(), message, colorReset)
		return
	}
	fmt.Fprintf(l.output, "[%s] [%s] %s\n", timestamp, level.String(), message)
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LevelDebug, colorGray, format, args...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LevelInfo, "", format, args...)
}

// Success logs a success message. Successes carry Info priority and render
// green.
func (l *Logger) Success(format string, args ...interface{}) {
	l.log(LevelInfo, colorGreen, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LevelWarn, colorYellow, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LevelError, colorRed, format, args...)
}

// defaultLogger is the package-level logger used by the convenience
// functions below.
var defaultLogger = New()

// Default returns the package-level logger.
func Default() *Logger { return defaultLogger }

// Debug logs a debug message to the default logger.
func Debug(format string, args ...interface{}) { defaultLogger.Debug(format, args...) }

// Info logs an informational message to the default logger.
func Info(format string, args ...interface{}) { defaultLogger.Info(format, args...) }

// Success logs a success message to the default logger.
func Success(format string, args ...interface{}) { defaultLogger.Success(format, args...) }

// Warn logs a warning message to the default logger.
func Warn(format string, args ...interface{}) { defaultLogger.Warn(format, args...) }

// Error logs an error message to the default logger.
func Error(format string, args ...interface{}) { defaultLogger.Error(format, args...) }
