// File: internal/progress/progress.go
// Project: Neutron Router
// Description: Coarse-grained progress reporting for long batch operations
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

// Package progress reports coarse progress for the two long-running batch
// operations in this repository: building the neutron adjacency graph and
// running a long neutron-waypoint route. No HTTP exporter, no time-windowed
// rates — just a monotonic counter and a terminal-sized bar.
package progress

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/term"

	"github.com/JoshuaAFerguson/neutron-router/internal/logger"
)

const defaultWidth = 80

// Reporter emits a line to stderr every time count crosses a multiple of
// every, and always on Done. Safe for concurrent calls to Inc from multiple
// goroutines (NeutronGraphBuilder calls it once per completed neutron from
// its worker pool).
type Reporter struct {
	label   string
	total   int64
	every   int64
	count   int64
	log     *logger.Logger
	started time.Time
}

// New creates a Reporter for a batch of total items, logging a line every
// every items under the given component name.
func New(component, label string, total int64, every int64) *Reporter {
	if every <= 0 {
		every = 1000
	}
	return &Reporter{
		label:   label,
		total:   total,
		every:   every,
		log:     logger.WithComponent(component),
		started: time.Now(),
	}
}

// Inc advances the counter by delta and logs a progress line if a multiple
// of every was crossed.
func (r *Reporter) Inc(delta int64) {
	prev := atomic.AddInt64(&r.count, delta) - delta
	next := prev + delta
	if prev/r.every != next/r.every {
		r.report(next)
	}
}

// Done logs a final summary line unconditionally.
func (r *Reporter) Done() {
	r.report(atomic.LoadInt64(&r.count))
}

func (r *Reporter) report(count int64) {
	width := terminalWidth()
	elapsed := time.Since(r.started)
	if r.total > 0 {
		pct := float64(count) / float64(r.total) * 100
		r.log.Info("%s: %d/%d (%.1f%%) in %s%s", r.label, count, r.total, pct, elapsed.Round(time.Millisecond), bar(count, r.total, width))
		return
	}
	r.log.Info("%s: %d in %s", r.label, count, elapsed.Round(time.Millisecond))
}

// bar renders a simple [####....] progress bar sized to fit within width
// columns (falling back to nothing if width is too small to render one
// usefully).
func bar(count, total int64, width int) string {
	const overhead = 12 // " [" + "]" + percentage-ish slack
	barWidth := width - overhead
	if barWidth < 10 || total <= 0 {
		return ""
	}
	filled := int(float64(barWidth) * float64(count) / float64(total))
	if filled > barWidth {
		filled = barWidth
	}
	b := make([]byte, barWidth)
	for i := range b {
		if i < filled {
			b[i] = '#'
		} else {
			b[i] = '.'
		}
	}
	return fmt.Sprintf(" [%s]", string(b))
}

// terminalWidth asks the terminal for its width, falling back to
// defaultWidth when stdout isn't a TTY (e.g. output piped during a CI run
// or into a log file).
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}
