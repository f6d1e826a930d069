// File: internal/router/heap.go
// Project: Neutron Router
// Description: The stale-entry min-heap shared by LocalRouter and NeutronRouter
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

// Package router implements the two-level A* search: LocalRouter for
// direct hops between arbitrary systems, and NeutronRouter for long-range
// routes composed of neutron-to-neutron waypoints with LocalRouter invoked
// to realize each concrete sub-path.
package router

import (
	"container/heap"

	"github.com/JoshuaAFerguson/neutron-router/internal/models"
)

// openEntry is one heap entry: a node id (global system index for
// LocalRouter, neutron-sequence index or the sentinel goal id for
// NeutronRouter) and the f-score it was pushed with. Entries are never
// mutated in place or removed on relaxation: push on every relaxation, and
// on pop compare the popped f-score against the node's current recorded
// best f-score, discarding the entry if it no longer matches. This avoids
// needing a decrease-key-capable heap.
type openEntry struct {
	id int
	f  models.HScore
}

type openHeap []openEntry

func (h openHeap) Len() int { return len(h) }
func (h openHeap) Less(i, j int) bool {
	if !h[i].f.Equal(h[j].f) {
		return h[i].f.Less(h[j].f)
	}
	return h[i].id < h[j].id
}
func (h openHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *openHeap) Push(x any) {
	*h = append(*h, x.(openEntry))
}

func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

var _ heap.Interface = (*openHeap)(nil)
