// File: internal/router/neutron.go
// Project: Neutron Router
// Description: Long-range routing over neutron-to-neutron waypoints
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

package router

import (
	"container/heap"

	"github.com/JoshuaAFerguson/neutron-router/internal/codec"
	"github.com/JoshuaAFerguson/neutron-router/internal/models"
	"github.com/JoshuaAFerguson/neutron-router/internal/progress"
)

// startParent is the sentinel parent id meaning "reached directly from the
// query's start system," used in the waypoint parent chain in place of a
// real neutron-sequence index.
const startParent = -1

// NeutronRouter searches an abstract graph whose nodes are neutron stars
// plus the query's goal, with LocalRouter invoked on demand both to
// estimate and to realize concrete sub-paths between waypoints.
type NeutronRouter struct {
	systems  []models.StarSystem
	entries  []codec.NeutronEntryRecord // indexed by neutron-sequence index
	d        float32
	local    *LocalRouter
	progress bool
}

// NewNeutronRouter builds a NeutronRouter over systems and the neutron
// adjacency computed by neutrongraph.Build, both assumed immutable for the
// lifetime of the router.
func NewNeutronRouter(systems []models.StarSystem, entries []codec.NeutronEntryRecord, d float32) *NeutronRouter {
	return &NeutronRouter{
		systems: systems,
		entries: entries,
		d:       d,
		local:   NewLocalRouter(systems, d),
	}
}

// pathHScore sums the lexicographic cost of a concrete path of global
// indices: one jump per consecutive pair, distance the Euclidean sum.
func (r *NeutronRouter) pathHScore(path []int) models.HScore {
	h := models.HScore{}
	for i := 1; i < len(path); i++ {
		h = h.Add(models.HScore{Jumps: 1, Distance: models.Distance(r.systems[path[i-1]], r.systems[path[i]])})
	}
	return h
}

// waypointHeuristic computes an optimistic estimate of the total remaining
// (jumps, distance) cost routing through v to goal, given that v is reached
// from fromGlobal. The jumps-to-goal term divides dist(v, goal) by 4 as if
// every later jump were boosted, so it is not a strict lower bound in every
// configuration.
// Used both to seed candidates from start and, during expansion, as the
// optimistic single-hop cost estimate from a popped neutron to each of its
// adjacency-list neighbors.
func (r *NeutronRouter) waypointHeuristic(fromGlobal, vGlobal, goal int) models.HScore {
	fromSys := r.systems[fromGlobal]
	vSys := r.systems[vGlobal]
	goalSys := r.systems[goal]

	distFromV := models.Distance(fromSys, vSys)
	distVGoal := models.Distance(vSys, goalSys)

	var jumpsFrom int64
	if fromSys.IsNeutron {
		if distFromV <= 4*r.d {
			jumpsFrom = 1
		} else {
			rem := distFromV - 4*r.d
			if rem < 0 {
				rem = 0
			}
			jumpsFrom = models.CeilDiv(rem, r.d) + 1
		}
	} else {
		jumpsFrom = models.CeilDiv(distFromV, r.d)
	}

	gDist := distVGoal / 4
	jumpsToGoal := models.CeilDiv(gDist, r.d)

	return models.HScore{
		Jumps:    jumpsFrom + jumpsToGoal,
		Distance: distFromV + distVGoal,
	}
}

// NeutronAStar returns the shortest-jump path from start to goal composed
// of neutron waypoints realized by LocalRouter, or nil if unreachable. The
// returned path's jump count never exceeds the no-neutron LocalRouter
// baseline's.
func (r *NeutronRouter) NeutronAStar(start, goal int) []int {
	baselinePath := r.local.AStar(start, goal)
	if baselinePath == nil {
		return nil
	}
	baselineHScore := r.pathHScore(baselinePath)

	numNeutrons := len(r.entries)
	goalID := numNeutrons

	g := make(map[int]models.HScore, numNeutrons+1)
	fScore := make(map[int]models.HScore, numNeutrons+1)
	parent := make(map[int]int, numNeutrons+1)
	closed := make(map[int]bool, numNeutrons+1)

	open := &openHeap{}
	heap.Init(open)

	fScore[goalID] = baselineHScore
	parent[goalID] = startParent
	heap.Push(open, openEntry{id: goalID, f: baselineHScore})

	for seqIdx, entry := range r.entries {
		est := r.waypointHeuristic(start, int(entry.Idx), goal)
		if est.Less(baselineHScore) {
			fScore[seqIdx] = est
			parent[seqIdx] = startParent
			heap.Push(open, openEntry{id: seqIdx, f: est})
		}
	}

	reporter := progress.New("Router", "neutron route search", -1, 1)

	for open.Len() > 0 {
		popped := heap.Pop(open).(openEntry)
		id := popped.id

		if stored, ok := fScore[id]; !ok || !stored.Equal(popped.f) {
			continue
		}
		if closed[id] {
			continue
		}
		closed[id] = true
		reporter.Inc(1)

		if id == goalID {
			reporter.Done()
			return r.materialize(start, goal, parent)
		}

		realizedG, ok := r.realize(start, id, parent, g)
		if !ok {
			continue // unreachable refinement: skip this waypoint entirely
		}
		g[id] = realizedG

		vGlobal := int(r.entries[id].Idx)

		directDist := models.Distance(r.systems[vGlobal], r.systems[goal])
		candidateGoal := realizedG.Add(models.HScore{Jumps: models.CeilDiv(directDist, r.d), Distance: directDist})
		if existing, ok := fScore[goalID]; !ok || candidateGoal.Less(existing) {
			fScore[goalID] = candidateGoal
			parent[goalID] = id
			heap.Push(open, openEntry{id: goalID, f: candidateGoal})
		}

		for _, neighborSeqIdx32 := range r.entries[id].Neighbors {
			neighborSeqIdx := int(neighborSeqIdx32)
			if closed[neighborSeqIdx] {
				continue
			}
			wGlobal := int(r.entries[neighborSeqIdx].Idx)
			candidate := realizedG.Add(r.waypointHeuristic(vGlobal, wGlobal, goal))
			if !candidate.Less(baselineHScore) {
				continue
			}
			if existing, ok := fScore[neighborSeqIdx]; !ok || candidate.Less(existing) {
				fScore[neighborSeqIdx] = candidate
				parent[neighborSeqIdx] = id
				heap.Push(open, openEntry{id: neighborSeqIdx, f: candidate})
			}
		}
	}

	reporter.Done()
	return nil
}

// realize computes the exact realized g-score of reaching waypoint id from
// its recorded parent: a direct or boosted jump counts as a single hop
// without invoking LocalRouter; anything farther must be confirmed (and
// measured) by an actual LocalRouter sub-search. ok is false if that
// sub-search finds no path, meaning id is presently unreachable from its
// parent and must be skipped.
func (r *NeutronRouter) realize(start, id int, parent map[int]int, g map[int]models.HScore) (models.HScore, bool) {
	vGlobal := int(r.entries[id].Idx)
	p := parent[id]

	var pGlobal int
	var pIsNeutron bool
	var pG models.HScore
	if p == startParent {
		pGlobal = start
		pIsNeutron = r.systems[start].IsNeutron
		pG = models.HScore{}
	} else {
		pGlobal = int(r.entries[p].Idx)
		pIsNeutron = true
		pG = g[p]
	}

	dist := models.Distance(r.systems[pGlobal], r.systems[vGlobal])

	var subLen int64
	switch {
	case pIsNeutron && dist <= 4*r.d:
		subLen = 1
	case dist <= r.d:
		subLen = 1
	default:
		subPath := r.local.AStar(pGlobal, vGlobal)
		if subPath == nil {
			return models.HScore{}, false
		}
		subLen = int64(len(subPath) - 1)
	}

	return pG.Add(models.HScore{Jumps: subLen, Distance: dist}), true
}

// materialize walks the waypoint parent chain from goal back to start and
// invokes LocalRouter to realize each concrete sub-path, concatenating them
// into one global-index path. Returns nil if any sub-path realization
// fails — a query either fully succeeds or reports no route.
func (r *NeutronRouter) materialize(start, goal int, parent map[int]int) []int {
	numNeutrons := len(r.entries)
	goalID := numNeutrons

	waypoints := []int{goal}
	cur := goalID
	for {
		p, ok := parent[cur]
		if !ok {
			return nil
		}
		if p == startParent {
			waypoints = append([]int{start}, waypoints...)
			break
		}
		waypoints = append([]int{int(r.entries[p].Idx)}, waypoints...)
		cur = p
	}

	var full []int
	for i := 1; i < len(waypoints); i++ {
		sub := r.local.AStar(waypoints[i-1], waypoints[i])
		if sub == nil {
			return nil
		}
		if i == 1 {
			full = append(full, sub...)
		} else {
			full = append(full, sub[1:]...) // drop duplicate junction index
		}
	}
	return full
}
