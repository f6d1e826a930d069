// File: internal/logger/logger.go
// Project: Neutron Router
// Description: Structured, component-tagged logging for the CLI tools
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

// Package logger provides level-filtered, component-tagged logging to
// stderr. Every long-running operation in this repository (catalog
// generation, neutron graph construction, route search) logs through a
// WithComponent sub-logger rather than the bare standard library logger, so
// progress and failures are all attributable to the stage that produced
// them.
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents the logging level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// String returns the string representation of the log level
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
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelInfo
	}
}

// Logger is a structured logger with configurable levels, writing to stderr
// so progress lines never interleave with the routed-path output a CLI tool
// prints to stdout.
type Logger struct {
	level     Level
	logger    *log.Logger
	mu        sync.Mutex
	component string
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// New creates a new Logger instance at the given level.
func New(level string) *Logger {
	return &Logger{
		level:  ParseLevel(level),
		logger: log.New(os.Stderr, "", 0),
	}
}

// WithComponent returns a new logger with a component name
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		level:     l.level,
		logger:    l.logger,
		component: component,
	}
}

// log writes a log message with the specified level
func (l *Logger) log(level Level, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	msg := fmt.Sprintf(format, args...)

	var logLine string
	if l.component != "" {
		logLine = fmt.Sprintf("[%s] %s [%s] %s", timestamp, level.String(), l.component, msg)
	} else {
		logLine = fmt.Sprintf("[%s] %s %s", timestamp, level.String(), msg)
	}

	l.logger.Println(logLine)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LevelDebug, format, args...)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LevelInfo, format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LevelWarn, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LevelError, format, args...)
}

// Fail logs an error tagged with the fatal-error category that produced it,
// the taxonomy internal/errors.Fatal defines for every CLI exit path.
// category is a plain string rather than errors.Category to avoid an import
// cycle (internal/errors already depends on this package for its own
// logging).
func (l *Logger) Fail(category string, err error) {
	l.log(LevelError, "[%s] %v", category, err)
}

// SetLevel changes the logging level
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current logging level
func (l *Logger) GetLevel() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// WithComponent returns a component-tagged logger off the package default,
// initializing the default at info level on first use. This is the only
// entry point every cmd/ tool and internal package in this repository
// actually calls.
func WithComponent(component string) *Logger {
	once.Do(func() {
		defaultLogger = New("info")
	})
	return defaultLogger.WithComponent(component)
}
