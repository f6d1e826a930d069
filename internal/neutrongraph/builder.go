// File: internal/neutrongraph/builder.go
// Project: Neutron Router
// Description: One-shot parallel computation of the pruned neutron adjacency graph
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

// Package neutrongraph computes, once and offline, a pruned neighbor list
// for every neutron star in a catalog. The dominance rule that prunes
// candidates is the algorithmically subtle part of this system; everything
// else in the package exists to drive it in parallel across the neutron
// sub-sequence and report progress doing so.
package neutrongraph

import (
	"context"
	"runtime"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/JoshuaAFerguson/neutron-router/internal/codec"
	ierrors "github.com/JoshuaAFerguson/neutron-router/internal/errors"
	"github.com/JoshuaAFerguson/neutron-router/internal/logger"
	"github.com/JoshuaAFerguson/neutron-router/internal/models"
	"github.com/JoshuaAFerguson/neutron-router/internal/progress"
)

var log = logger.WithComponent("NeutronGraph")

// MaxDistance is the hard candidate-set cutoff: neutrons farther apart than
// this are never chain-reachable in a single hop under any realistic jump
// budget, so they are excluded before the dominance walk even runs.
const MaxDistance float32 = 5000

// candidate is one entry in a neutron's sorted candidate set during
// neighbor computation.
type candidate struct {
	neutronSeqIdx int // index into the neutron sequence N, not the global sequence
	dist          float32
}

// Build computes one NeutronEntryRecord per neutron in systems, in the same
// order the neutrons appear in the global sequence. D is the direct-jump
// range below which a candidate is unconditionally admitted.
//
// Each neutron is processed independently by a worker drawn from a pool
// sized to the host's CPU count; the only shared state is the pre-sized
// result slice (each worker writes to its own index, so no lock is taken)
// and the progress counter, which is advanced atomically; there is no
// hand-rolled channel plumbing.
func Build(ctx context.Context, systems []models.StarSystem, d float32) ([]codec.NeutronEntryRecord, error) {
	neutronGlobalIdx := make([]uint32, 0)
	for i, s := range systems {
		if s.IsNeutron {
			neutronGlobalIdx = append(neutronGlobalIdx, uint32(i))
		}
	}

	runID := uuid.New()
	log.Info("[run %s] building neutron graph over %d neutrons (of %d systems), D=%.1f", runID, len(neutronGlobalIdx), len(systems), d)

	results := make([]codec.NeutronEntryRecord, len(neutronGlobalIdx))
	reporter := progress.New("NeutronGraph", "neutron graph build", int64(len(neutronGlobalIdx)), 1000)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for seqIdx, globalIdx := range neutronGlobalIdx {
		seqIdx, globalIdx := seqIdx, globalIdx
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			neighbors := computeNeighbors(systems, neutronGlobalIdx, seqIdx, globalIdx, d)
			results[seqIdx] = codec.NeutronEntryRecord{Idx: globalIdx, Neighbors: neighbors}
			reporter.Inc(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, ierrors.New(ierrors.Setup, err)
	}
	reporter.Done()
	log.Info("[run %s] neutron graph build complete", runID)

	return results, nil
}

// computeNeighbors applies the admission rule for a single neutron s
// (neutronSeqIdx in the neutron sequence, globalIdx in the global system
// sequence): admit candidates within D unconditionally, admit farther
// candidates only when no closer-admitted neighbor dominates them.
func computeNeighbors(systems []models.StarSystem, neutronGlobalIdx []uint32, neutronSeqIdx int, globalIdx uint32, d float32) []uint32 {
	s := systems[globalIdx]

	candidates := make([]candidate, 0, len(neutronGlobalIdx))
	for otherSeqIdx, otherGlobalIdx := range neutronGlobalIdx {
		if otherSeqIdx == neutronSeqIdx {
			continue
		}
		t := systems[otherGlobalIdx]
		dist := models.Distance(s, t)
		if dist < MaxDistance {
			candidates = append(candidates, candidate{neutronSeqIdx: otherSeqIdx, dist: dist})
		}
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].dist < candidates[j].dist })

	var admitted []candidate
	neighbors := make([]uint32, 0, len(candidates))
	for _, t := range candidates {
		if t.dist <= d {
			admitted = append(admitted, t)
			neighbors = append(neighbors, uint32(t.neutronSeqIdx))
			continue
		}
		if !dominated(systems, neutronGlobalIdx, admitted, globalIdx, t) {
			admitted = append(admitted, t)
			neighbors = append(neighbors, uint32(t.neutronSeqIdx))
		}
	}

	return neighbors
}

// dominated reports whether candidate t is dominated by any neighbor
// already admitted into u: u dominates t with respect to s iff
// dist(t, u) < dist(s, t), i.e. routing s→u→t beats keeping t as a direct
// neighbor of s.
func dominated(systems []models.StarSystem, neutronGlobalIdx []uint32, admitted []candidate, globalIdx uint32, t candidate) bool {
	tSystem := systems[neutronGlobalIdx[t.neutronSeqIdx]]
	for _, u := range admitted {
		uSystem := systems[neutronGlobalIdx[u.neutronSeqIdx]]
		if models.Distance(tSystem, uSystem) < t.dist {
			return true
		}
	}
	return false
}
