// File: internal/logger/logger_test.go
// Project: Neutron Router
// Description: Tests for structured logging
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

package logger

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"INFO", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"fatal", LevelFatal},
		{"unknown", LevelInfo}, // default
	}

	for _, tt := range tests {
		result := ParseLevel(tt.input)
		if result != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LevelFatal, "FATAL"},
	}

	for _, tt := range tests {
		result := tt.level.String()
		if result != tt.expected {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, result, tt.expected)
		}
	}
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{
		level:  LevelInfo,
		logger: log.New(&buf, "", 0),
	}

	// Debug should not be logged
	l.Debug("debug message")
	if buf.Len() > 0 {
		t.Errorf("Debug message was logged when level is Info")
	}

	// Info should be logged
	l.Info("info message")
	if !strings.Contains(buf.String(), "INFO") || !strings.Contains(buf.String(), "info message") {
		t.Errorf("Info message not logged correctly: %q", buf.String())
	}

	buf.Reset()

	// Warn should be logged
	l.Warn("warn message")
	if !strings.Contains(buf.String(), "WARN") || !strings.Contains(buf.String(), "warn message") {
		t.Errorf("Warn message not logged correctly: %q", buf.String())
	}

	buf.Reset()

	// Error should be logged
	l.Error("error message")
	if !strings.Contains(buf.String(), "ERROR") || !strings.Contains(buf.String(), "error message") {
		t.Errorf("Error message not logged correctly: %q", buf.String())
	}
}

func TestLoggerWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{
		level:  LevelInfo,
		logger: log.New(&buf, "", 0),
	}

	componentLogger := l.WithComponent("TestComponent")
	componentLogger.Info("test message")

	output := buf.String()
	if !strings.Contains(output, "[TestComponent]") {
		t.Errorf("Component name not included in log: %q", output)
	}
	if !strings.Contains(output, "test message") {
		t.Errorf("Message not included in log: %q", output)
	}
}

func TestLoggerSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{
		level:  LevelInfo,
		logger: log.New(&buf, "", 0),
	}

	// Debug should not be logged at Info level
	l.Debug("should not appear")
	if buf.Len() > 0 {
		t.Errorf("Debug message logged at Info level")
	}

	// Change to Debug level
	l.SetLevel(LevelDebug)

	// Now debug should be logged
	l.Debug("should appear")
	if !strings.Contains(buf.String(), "DEBUG") {
		t.Errorf("Debug message not logged after changing level: %q", buf.String())
	}
}

func TestLoggerFail(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{
		level:  LevelInfo,
		logger: log.New(&buf, "", 0),
	}

	l.Fail("semantic", errors.New("goal index out of range"))

	output := buf.String()
	if !strings.Contains(output, "ERROR") {
		t.Errorf("Fail did not log at error level: %q", output)
	}
	if !strings.Contains(output, "[semantic]") {
		t.Errorf("Fail did not tag the category: %q", output)
	}
	if !strings.Contains(output, "goal index out of range") {
		t.Errorf("Fail did not include the underlying error: %q", output)
	}
}

func TestNewAndWithComponent(t *testing.T) {
	l := New("debug")
	if l.GetLevel() != LevelDebug {
		t.Errorf("New(\"debug\") level = %v, want LevelDebug", l.GetLevel())
	}

	sub := l.WithComponent("Router")
	if sub.component != "Router" {
		t.Errorf("WithComponent did not set component: %q", sub.component)
	}
	if sub.GetLevel() != l.GetLevel() {
		t.Errorf("WithComponent changed the level: %v, want %v", sub.GetLevel(), l.GetLevel())
	}
}
