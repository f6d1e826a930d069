// File: internal/neutrongraph/builder_test.go
// Project: Neutron Router
// Description: Dominance-pruned neutron adjacency: tests
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

package neutrongraph

import (
	"context"
	"sort"
	"testing"

	"github.com/JoshuaAFerguson/neutron-router/internal/models"
)

func neutron(name string, x, y, z float32) models.StarSystem {
	return models.NewStarSystem(name, x, y, z, 0, "Neutron Star")
}

func nonNeutron(name string, x, y, z float32) models.StarSystem {
	return models.NewStarSystem(name, x, y, z, 0, "G (Yellow)")
}

// TestDominancePruning: S's neighbor list at jump range D=60. Every
// candidate is beyond D, so each goes through the dominance check: A and C
// are admitted (not dominated), B is pruned (dominated by A), and E is
// admitted (not dominated).
func TestDominancePruning(t *testing.T) {
	const d float32 = 60

	systems := []models.StarSystem{
		neutron("S", 0, 0, 0),
		neutron("A", d+10, 0, 0),
		neutron("B", d+20, 0, 0),
		neutron("C", 0, d+10, 0),
		neutron("E", -2*d, 0, 0),
	}
	neutronGlobalIdx := []uint32{0, 1, 2, 3, 4} // all five are neutrons, in this order

	neighbors := computeNeighbors(systems, neutronGlobalIdx, 0, 0, d)

	gotNames := make([]string, len(neighbors))
	for i, seqIdx := range neighbors {
		gotNames[i] = systems[neutronGlobalIdx[seqIdx]].Name
	}
	sort.Strings(gotNames)

	want := []string{"A", "C", "E"}
	if len(gotNames) != len(want) {
		t.Fatalf("got neighbors %v, want %v", gotNames, want)
	}
	for i := range want {
		if gotNames[i] != want[i] {
			t.Fatalf("got neighbors %v, want %v", gotNames, want)
		}
	}
}

func TestBuildOrdersOutputByNeutronSequence(t *testing.T) {
	systems := []models.StarSystem{
		nonNeutron("Sol", 0, 0, 0),
		neutron("N1", 50, 0, 0),
		nonNeutron("Mid", 100, 0, 0),
		neutron("N2", 150, 0, 0),
	}

	entries, err := Build(context.Background(), systems, 400)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 neutron entries, got %d", len(entries))
	}
	if entries[0].Idx != 1 || entries[1].Idx != 3 {
		t.Fatalf("expected entries in global-order [1, 3], got [%d, %d]", entries[0].Idx, entries[1].Idx)
	}
}

func TestBuildAdmitsDirectNeighborsWithinD(t *testing.T) {
	systems := []models.StarSystem{
		neutron("N1", 0, 0, 0),
		neutron("N2", 30, 0, 0),
	}

	entries, err := Build(context.Background(), systems, 60)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if len(e.Neighbors) != 1 {
			t.Errorf("expected each of the two mutually close neutrons to admit the other, got %+v", e)
		}
	}
}
