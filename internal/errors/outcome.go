// File: internal/errors/outcome.go
// Project: Neutron Router
// Description: Per-run fatal-error counters surfaced by CLI tools on exit
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

package errors

import (
	"fmt"
	"sync"
	"time"

	"github.com/JoshuaAFerguson/neutron-router/internal/logger"
)

var outcomeLog = logger.WithComponent("Outcome")

// Outcome tallies fatal errors by Category over the life of one CLI
// invocation. A batch tool runs once and exits — it has no "errors per
// minute" to report, just "what went wrong."
type Outcome struct {
	mu           sync.Mutex
	byCategory   map[Category]int64
	lastErr      error
	lastCategory Category
	startedAt    time.Time
}

// NewOutcome creates an empty outcome tracker.
func NewOutcome() *Outcome {
	return &Outcome{
		byCategory: make(map[Category]int64),
		startedAt:  time.Now(),
	}
}

// Record tallies one occurrence of err under its Category. If err is not a
// *Fatal it is recorded under Setup, since an un-categorized error reaching
// this call is itself a setup bug in the caller.
func (o *Outcome) Record(err error) {
	if err == nil {
		return
	}
	category := Setup
	if f, ok := err.(*Fatal); ok {
		category = f.Category
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.byCategory[category]++
	o.lastErr = err
	o.lastCategory = category
}

// Count returns the number of recorded errors of the given category.
func (o *Outcome) Count(category Category) int64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.byCategory[category]
}

// Total returns the number of recorded errors across every category.
func (o *Outcome) Total() int64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	var total int64
	for _, n := range o.byCategory {
		total += n
	}
	return total
}

// LogSummary logs a one-line-per-category summary, used right before a CLI
// tool exits non-zero.
func (o *Outcome) LogSummary() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if len(o.byCategory) == 0 {
		return
	}
	outcomeLog.Fail(string(o.lastCategory), fmt.Errorf("run failed after %v: %w", time.Since(o.startedAt), o.lastErr))
	for category, count := range o.byCategory {
		outcomeLog.Error("  %s: %d", category, count)
	}
}
