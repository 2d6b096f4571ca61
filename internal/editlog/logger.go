// Package editlog keeps an append-only audit trail of edits to tracked files.
package editlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/emiliopalmerini/hookguard/internal/domain"
)

// Logger appends one line per tracked edit to a log file. The file is
// opened and closed on every call.
type Logger struct {
	path   string
	suffix string
	now    func() time.Time
}

// Option configures a Logger.
type Option func(*Logger)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) { l.now = now }
}

// New returns a Logger writing to path for files ending in suffix.
// An empty suffix tracks every file.
func New(path, suffix string, opts ...Option) *Logger {
	l := &Logger{path: path, suffix: suffix, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Path returns the log file location.
func (l *Logger) Path() string {
	return l.path
}

// Tracks reports whether edits to filePath are logged.
func (l *Logger) Tracks(filePath string) bool {
	return filePath != "" && strings.HasSuffix(filePath, l.suffix)
}

// Record appends a line for the edit if filePath is tracked. It reports
// whether a line was written.
func (l *Logger) Record(toolName, filePath string) (bool, error) {
	if !l.Tracks(filePath) {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return false, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return false, fmt.Errorf("failed to open edit log: %w", err)
	}

	// A single write per record keeps concurrent appends line-atomic.
	line := domain.NewEditRecord(l.now(), toolName, filePath).Line()
	if _, err := f.WriteString(line); err != nil {
		_ = f.Close()
		return false, fmt.Errorf("failed to write edit log: %w", err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("failed to close edit log: %w", err)
	}
	return true, nil
}
