// File: internal/router/local_test.go
// Project: Neutron Router
// Description: LocalRouter (a_star): tests
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

package router

import (
	"testing"

	"github.com/JoshuaAFerguson/neutron-router/internal/models"
)

func sys(name string, x, y, z float32, neutron bool) models.StarSystem {
	starType := "G (Yellow)"
	if neutron {
		starType = "Neutron Star"
	}
	return models.NewStarSystem(name, x, y, z, 0, starType)
}

// withSortedDistFromSol assigns DistFromSol in index order so the slice
// satisfies the global sort invariant LocalRouter.Neighbors relies on.
func withSortedDistFromSol(systems []models.StarSystem) []models.StarSystem {
	out := make([]models.StarSystem, len(systems))
	for i, s := range systems {
		out[i] = models.NewStarSystem(s.Name, s.X, s.Y, s.Z, float32(i)*50, s.MainStarType)
	}
	return out
}

func TestLocalRouterTrivial(t *testing.T) {
	systems := []models.StarSystem{
		sys("A", 0, 0, 0, false),
		sys("B", 50, 0, 0, false),
		sys("C", 100, 0, 0, false),
	}
	systems = withSortedDistFromSol(systems)

	r := NewLocalRouter(systems, 60)
	path := r.AStar(0, 2)

	want := []int{0, 1, 2}
	assertPath(t, path, want)
}

func TestLocalRouterOutOfRange(t *testing.T) {
	systems := []models.StarSystem{
		sys("A", 0, 0, 0, false),
		sys("B", 200, 0, 0, false),
	}
	systems = withSortedDistFromSol(systems)

	r := NewLocalRouter(systems, 60)
	if path := r.AStar(0, 1); path != nil {
		t.Fatalf("expected no path, got %v", path)
	}
}

func TestLocalRouterNeutronShortcut(t *testing.T) {
	// Collinear A-N-B-C where N is a neutron: A->N fits the base range,
	// N->B only fits the boosted 4D range, and B->C fits the base range
	// again, so the only feasible path must route through the neutron.
	systems := []models.StarSystem{
		models.NewStarSystem("A", 0, 0, 0, 0, "G (Yellow)"),
		models.NewStarSystem("N", 30, 0, 0, 30, "Neutron Star"),
		models.NewStarSystem("B", 260, 0, 0, 260, "G (Yellow)"),
		models.NewStarSystem("C", 320, 0, 0, 320, "G (Yellow)"),
	}

	r := NewLocalRouter(systems, 60)
	path := r.AStar(0, 3)

	assertPath(t, path, []int{0, 1, 2, 3})
}

func TestLocalRouterHeuristicCorrectnessGrid(t *testing.T) {
	const n = 10
	const spacing float32 = 50
	systems := make([]models.StarSystem, 0, n*n*n)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				systems = append(systems, models.NewStarSystem(
					"", float32(x)*spacing, float32(y)*spacing, float32(z)*spacing, 0, "G (Yellow)"))
			}
		}
	}
	// Sort by distance from origin (0,0,0) to satisfy the global invariant.
	for i := range systems {
		systems[i] = models.NewStarSystem(systems[i].Name, systems[i].X, systems[i].Y, systems[i].Z,
			models.Distance(systems[i], models.StarSystem{}), systems[i].MainStarType)
	}
	sortByDist(systems)

	start, goal := -1, -1
	for i, s := range systems {
		if s.X == 0 && s.Y == 0 && s.Z == 0 {
			start = i
		}
		if s.X == float32(n-1)*spacing && s.Y == float32(n-1)*spacing && s.Z == float32(n-1)*spacing {
			goal = i
		}
	}
	if start == -1 || goal == -1 {
		t.Fatal("corners not found in generated grid")
	}

	r := NewLocalRouter(systems, 60)
	path := r.AStar(start, goal)
	if path == nil {
		t.Fatal("expected a path across the grid, got none")
	}
	if path[0] != start || path[len(path)-1] != goal {
		t.Fatalf("path does not start/end at the requested corners: %v", path)
	}
	for i := 1; i < len(path); i++ {
		d := models.Distance(systems[path[i-1]], systems[path[i]])
		if d > EffectiveRange(systems[path[i-1]], 60) {
			t.Fatalf("jump %d->%d exceeds effective range: dist=%f", path[i-1], path[i], d)
		}
	}
	// At D=60 with spacing 50 every jump moves one grid step along one axis,
	// so the fewest possible jumps between opposite corners is 3*(n-1).
	if jumps := len(path) - 1; jumps != 3*(n-1) {
		t.Fatalf("expected the minimum %d jumps across the grid, got %d", 3*(n-1), jumps)
	}
}

func sortByDist(systems []models.StarSystem) {
	for i := 1; i < len(systems); i++ {
		for j := i; j > 0 && systems[j].DistFromSol < systems[j-1].DistFromSol; j-- {
			systems[j], systems[j-1] = systems[j-1], systems[j]
		}
	}
}

func assertPath(t *testing.T, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got path %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got path %v, want %v", got, want)
		}
	}
}
