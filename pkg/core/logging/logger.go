// ============================================================================
// bundlerelay - Block Engine Relay Client SDK
// ============================================================================
//
// Package:     logging
// Description: Structured key/value logger used across the SDK and CLI
// Author:      Mike Stoffels with Claude
// Created:     2026-06-14
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"sync"
	"time"
)

// Logger is a leveled structured logger. Methods accept a message followed by
// alternating key/value pairs.
type Logger struct {
	name      string
	level     Level
	formatter Formatter
	output    io.Writer
	mutex     sync.Mutex
}

// Config holds logger configuration
type Config struct {
	Name   string
	Level  string
	Format string // "json" or "text" (default: text)
	Output io.Writer
}

// New creates a named logger with info level and text output to stderr
func New(name string) *Logger {
	return NewWithConfig(Config{Name: name})
}

// NewWithConfig creates a logger with the specified configuration
func NewWithConfig(cfg Config) *Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	return &Logger{
		name:      cfg.Name,
		level:     ParseLevel(cfg.Level),
		formatter: GetFormatter(cfg.Format),
		output:    output,
	}
}

// WithLevel returns a copy of the logger with the given minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return &Logger{
		name:      l.name,
		level:     level,
		formatter: l.formatter,
		output:    l.output,
	}
}

// Debug logs a debug message with key/value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.log(LevelDebug, msg, keysAndValues...)
}

// Info logs an info message with key/value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.log(LevelInfo, msg, keysAndValues...)
}

// Warn logs a warning message with key/value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.log(LevelWarn, msg, keysAndValues...)
}

// Error logs an error message with key/value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.log(LevelError, msg, keysAndValues...)
}

func (l *Logger) log(level Level, msg string, keysAndValues ...interface{}) {
	if level < l.level {
		return
	}

	entry := &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Logger:    l.name,
		Message:   msg,
		Fields:    toFields(keysAndValues...),
	}

	line, err := l.formatter.Format(entry)
	if err != nil {
		return
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.output.Write(line)
}

// toFields converts key/value pairs to Fields; non-string keys are skipped
func toFields(keysAndValues ...interface{}) Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(Fields, len(keysAndValues)/2)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
