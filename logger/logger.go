// SPDX-License-Identifier: MIT
// Package logger is a small leveled wrapper over the standard log package.
// It keeps the most recent entries in a ring buffer for inspection.
package logger

import (
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// DefaultBufferSize is the number of entries kept by New.
const DefaultBufferSize = 128

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLevel maps a case-insensitive name (debug, info, warn, warning, error)
// to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}

	return LevelInfo, fmt.Errorf("logger: unknown level %q", s)
}

// Entry represents a single log entry.
type Entry struct {
	Timestamp string
	Level     string
	Message   string
}

type buffer struct {
	mu      sync.RWMutex
	entries []Entry
	size    int
	pos     int
}

// Logger writes entries at or above its level to an underlying *log.Logger.
// Every entry, printed or not, lands in the ring buffer.
type Logger struct {
	out    *log.Logger
	level  Level
	buffer *buffer
}

// New creates a Logger writing to w with the given minimum level.
func New(w io.Writer, level Level) *Logger {
	return &Logger{
		out:   log.New(w, "", log.LstdFlags),
		level: level,
		buffer: &buffer{
			entries: make([]Entry, DefaultBufferSize),
			size:    DefaultBufferSize,
		},
	}
}

// Discard returns a Logger that prints nothing.
func Discard() *Logger {
	return New(io.Discard, LevelError+1)
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if level >= l.level {
		l.out.Printf("[%s] %s", level, msg)
	}

	l.buffer.mu.Lock()
	l.buffer.entries[l.buffer.pos] = Entry{
		Timestamp: time.Now().Format("2006-01-02 15:04:05.000"),
		Level:     level.String(),
		Message:   msg,
	}
	l.buffer.pos = (l.buffer.pos + 1) % l.buffer.size
	l.buffer.mu.Unlock()
}

// Debug logs a diagnostic message.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LevelDebug, format, args...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LevelInfo, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LevelWarn, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LevelError, format, args...)
}

// Entries returns the buffered entries in chronological order.
func (l *Logger) Entries() []Entry {
	l.buffer.mu.RLock()
	defer l.buffer.mu.RUnlock()

	result := make([]Entry, 0, l.buffer.size)
	for i := 0; i < l.buffer.size; i++ {
		idx := (l.buffer.pos + i) % l.buffer.size
		if l.buffer.entries[idx].Timestamp != "" {
			result = append(result, l.buffer.entries[idx])
		}
	}

	return result
}
