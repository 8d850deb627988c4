// Package logging provides the file-backed logger used by the CLI.
// Warnings and errors are additionally echoed to stderr so that failure
// paths stay visible without opening the log file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/talia-cli/talia/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger writes log lines to a single append-only file.
// Fields are ordered to minimize memory padding.
type Logger struct {
	file    *os.File
	console io.Writer
	path    string
	mu      sync.Mutex
	level   slog.Level
}

// New creates a Logger writing to the given file path. If path is empty,
// file output is disabled and only the console echo remains.
func New(path string, level slog.Level) *Logger {
	return &Logger{
		path:    path,
		level:   level,
		console: os.Stderr,
	}
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ensureFile opens or returns the log file.
func (l *Logger) ensureFile() (*os.File, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return l.file, nil
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0o750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	// Log files are append-only and readable by owner and group
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // see above
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.file = f
	return f, nil
}

// Close closes the log file if one is open.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// formatLine formats one entry: [2024-01-15 09:30:00] [INFO] message
func formatLine(t time.Time, level slog.Level, msg string) string {
	return fmt.Sprintf("[%s] [%s] %s\n", t.Format("2006-01-02 15:04:05"), levelToString(level), msg)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// log writes one entry to the file and, for warn and above, to the console.
func (l *Logger) log(level slog.Level, msg string) {
	if level < l.level {
		return
	}

	entry := formatLine(time.Now(), level, msg)

	if l.path != "" {
		if f, err := l.ensureFile(); err == nil {
			_, _ = io.WriteString(f, entry)
		}
	}

	if level >= slog.LevelWarn && l.console != nil {
		_, _ = io.WriteString(l.console, entry)
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.log(slog.LevelDebug, msg)
}

// Info logs an info message.
func (l *Logger) Info(msg string) {
	l.log(slog.LevelInfo, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.log(slog.LevelWarn, msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.log(slog.LevelError, msg)
}
