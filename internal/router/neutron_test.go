// File: internal/router/neutron_test.go
// Project: Neutron Router
// Description: NeutronRouter (neutron_a_star): tests
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

package router

import (
	"testing"

	"github.com/JoshuaAFerguson/neutron-router/internal/codec"
	"github.com/JoshuaAFerguson/neutron-router/internal/models"
)

// neutronEntriesFor derives a simplified []codec.NeutronEntryRecord for a
// tiny hand-built system list without importing neutrongraph (keeping this
// test package's dependency graph one-directional). It lists only neutrons
// within d of each other as neighbors; the non-dominated neighbors beyond d
// that neutrongraph.Build would also admit are left out.
func neutronEntriesFor(systems []models.StarSystem, d float32) []codec.NeutronEntryRecord {
	var neutronGlobal []int
	for i, s := range systems {
		if s.IsNeutron {
			neutronGlobal = append(neutronGlobal, i)
		}
	}

	entries := make([]codec.NeutronEntryRecord, len(neutronGlobal))
	for seqIdx, globalIdx := range neutronGlobal {
		var neighbors []uint32
		for otherSeq, otherGlobal := range neutronGlobal {
			if otherSeq == seqIdx {
				continue
			}
			if models.Distance(systems[globalIdx], systems[otherGlobal]) <= d {
				neighbors = append(neighbors, uint32(otherSeq))
			}
		}
		entries[seqIdx] = codec.NeutronEntryRecord{Idx: uint32(globalIdx), Neighbors: neighbors}
	}
	return entries
}

func TestNeutronRouterNoNeutronsMatchesBaseline(t *testing.T) {
	systems := []models.StarSystem{
		models.NewStarSystem("A", 0, 0, 0, 0, "G (Yellow)"),
		models.NewStarSystem("B", 50, 0, 0, 50, "G (Yellow)"),
		models.NewStarSystem("C", 100, 0, 0, 100, "G (Yellow)"),
	}

	r := NewNeutronRouter(systems, neutronEntriesFor(systems, 60), 60)
	path := r.NeutronAStar(0, 2)

	assertPath(t, path, []int{0, 1, 2})
}

func TestNeutronRouterShortcut(t *testing.T) {
	systems := []models.StarSystem{
		models.NewStarSystem("A", 0, 0, 0, 0, "G (Yellow)"),
		models.NewStarSystem("N", 30, 0, 0, 30, "Neutron Star"),
		models.NewStarSystem("B", 260, 0, 0, 260, "G (Yellow)"),
		models.NewStarSystem("C", 320, 0, 0, 320, "G (Yellow)"),
	}

	r := NewNeutronRouter(systems, neutronEntriesFor(systems, 60), 60)
	path := r.NeutronAStar(0, 3)

	assertPath(t, path, []int{0, 1, 2, 3})
	if jumps := len(path) - 1; jumps != 3 {
		t.Fatalf("expected 3 jumps, got %d", jumps)
	}
}

func TestNeutronRouterNeverWorseThanBaseline(t *testing.T) {
	systems := []models.StarSystem{
		models.NewStarSystem("A", 0, 0, 0, 0, "G (Yellow)"),
		models.NewStarSystem("N1", 30, 0, 0, 30, "Neutron Star"),
		models.NewStarSystem("N2", 260, 0, 0, 260, "Neutron Star"),
		models.NewStarSystem("Goal", 490, 0, 0, 490, "G (Yellow)"),
	}

	local := NewLocalRouter(systems, 60)
	baseline := local.AStar(0, 3)
	if baseline == nil {
		t.Fatal("expected a baseline path to exist")
	}

	r := NewNeutronRouter(systems, neutronEntriesFor(systems, 60), 60)
	path := r.NeutronAStar(0, 3)
	if path == nil {
		t.Fatal("expected a neutron-assisted path to exist")
	}
	if len(path)-1 > len(baseline)-1 {
		t.Fatalf("neutron path has more jumps (%d) than baseline (%d)", len(path)-1, len(baseline)-1)
	}
	if path[0] != 0 || path[len(path)-1] != 3 {
		t.Fatalf("path does not start/end at the requested endpoints: %v", path)
	}
}

func TestNeutronRouterUnreachable(t *testing.T) {
	systems := []models.StarSystem{
		models.NewStarSystem("A", 0, 0, 0, 0, "G (Yellow)"),
		models.NewStarSystem("B", 1000, 0, 0, 1000, "G (Yellow)"),
	}

	r := NewNeutronRouter(systems, neutronEntriesFor(systems, 60), 60)
	if path := r.NeutronAStar(0, 1); path != nil {
		t.Fatalf("expected no route, got %v", path)
	}
}
