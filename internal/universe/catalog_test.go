// File: internal/universe/catalog_test.go
// Project: Neutron Router
// Description: Synthetic catalog generation: tests
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

package universe

import (
	"testing"

	"github.com/JoshuaAFerguson/neutron-router/internal/models"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.NumSystems != 1000 {
		t.Errorf("expected 1000 systems, got %d", config.NumSystems)
	}
	if config.CoreRadius >= config.MidRadius || config.MidRadius >= config.OuterRadius || config.OuterRadius >= config.EdgeRadius {
		t.Error("radius bands must be strictly increasing")
	}
}

func TestGenerateSolAtOrigin(t *testing.T) {
	config := DefaultConfig()
	config.NumSystems = 25
	config.Seed = 12345

	systems := NewGenerator(config).Generate()

	if len(systems) != config.NumSystems {
		t.Fatalf("expected %d systems, got %d", config.NumSystems, len(systems))
	}

	var sol *models.StarSystem
	for i := range systems {
		if systems[i].Name == "Sol" {
			sol = &systems[i]
		}
	}
	if sol == nil {
		t.Fatal("Sol not found in generated catalog")
	}
	if sol.X != 0 || sol.Y != 0 || sol.Z != 0 || sol.DistFromSol != 0 {
		t.Errorf("Sol should sit at the origin with zero distance, got %+v", sol)
	}
}

func TestGenerateSortedByDistance(t *testing.T) {
	config := DefaultConfig()
	config.NumSystems = 200
	config.Seed = 42

	systems := NewGenerator(config).Generate()

	for i := 1; i < len(systems); i++ {
		if systems[i].DistFromSol < systems[i-1].DistFromSol {
			t.Fatalf("systems not sorted ascending at index %d: %f < %f", i, systems[i].DistFromSol, systems[i-1].DistFromSol)
		}
	}
}

func TestGenerateUniqueNames(t *testing.T) {
	config := DefaultConfig()
	config.NumSystems = 500
	config.Seed = 7

	systems := NewGenerator(config).Generate()

	seen := make(map[string]bool, len(systems))
	for _, s := range systems {
		if seen[s.Name] {
			t.Fatalf("duplicate system name %q", s.Name)
		}
		seen[s.Name] = true
	}
}

func TestGenerateNeutronFraction(t *testing.T) {
	config := DefaultConfig()
	config.NumSystems = 2000
	config.NeutronFraction = 0.1
	config.Seed = 99

	systems := NewGenerator(config).Generate()

	var neutrons int
	for _, s := range systems {
		if s.IsNeutron {
			neutrons++
			if s.MainStarType != "Neutron Star" {
				t.Errorf("IsNeutron true but MainStarType is %q", s.MainStarType)
			}
		}
	}
	if neutrons == 0 {
		t.Error("expected at least one neutron star in a 2000-system catalog at 10% fraction")
	}
}
