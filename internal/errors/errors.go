// File: internal/errors/errors.go
// Project: Neutron Router
// Description: The fatal-error taxonomy used by every CLI tool
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

// Package errors defines the four fatal-error categories this system
// reports on exit: setup, decode, semantic, and algorithmic failures. None
// of them are transient, so unlike a database-backed service's error
// handling, nothing here is retried.
package errors

import "fmt"

// Category classifies a fatal error for CLI exit reporting.
type Category string

const (
	// Setup covers missing or malformed input files and bad CLI arguments.
	Setup Category = "setup"
	// Decode covers corrupt records in an indexed file.
	Decode Category = "decode"
	// Semantic covers a start or goal name/index that cannot be resolved.
	Semantic Category = "semantic"
	// Unreachable covers a goal that cannot be reached from start; this is
	// the one category that is not a crash but an absent (nil) result.
	Unreachable Category = "unreachable"
)

// Fatal wraps an underlying error with the category that prefixes its
// message. Every CLI main in this repository prints that message to stderr
// and exits with status 1, whatever the category, never a bare log.Fatal.
type Fatal struct {
	Category Category
	Err      error
}

func (f *Fatal) Error() string {
	return fmt.Sprintf("%s: %v", f.Category, f.Err)
}

func (f *Fatal) Unwrap() error {
	return f.Err
}

// New wraps err with the given category.
func New(category Category, err error) *Fatal {
	return &Fatal{Category: category, Err: err}
}

// Newf wraps a formatted error with the given category.
func Newf(category Category, format string, args ...any) *Fatal {
	return &Fatal{Category: category, Err: fmt.Errorf(format, args...)}
}
