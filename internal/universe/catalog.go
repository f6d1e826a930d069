// File: internal/universe/catalog.go
// Project: Neutron Router
// Description: Synthetic catalog generation: positions and neutron marking
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

package universe

import (
	"math"
	"math/rand"
	"sort"

	"github.com/JoshuaAFerguson/neutron-router/internal/models"
)

// Config configures synthetic catalog generation: a 3D, routing-only shape
// with no faction, tech-level, or pre-assigned jump-route-topology fields —
// this system models no governments or fixed connectivity, jumps are
// derived purely from distance and the neutron boost — and a
// NeutronFraction field in their place.
type Config struct {
	NumSystems      int     // Total systems, including Sol at index 0.
	CoreRadius      float64 // Sphere radius holding the densest 15% of systems.
	MidRadius       float64 // Sphere radius holding the next 35%.
	OuterRadius     float64 // Sphere radius holding the next 40%.
	EdgeRadius      float64 // Sphere radius holding the remaining 10%.
	NeutronFraction float64 // Fraction of non-Sol systems marked neutron.
	Seed            int64   // 0 selects a random seed.
}

// DefaultConfig returns sensible defaults for a small test catalog.
func DefaultConfig() Config {
	return Config{
		NumSystems:      1000,
		CoreRadius:      300,
		MidRadius:       1200,
		OuterRadius:     3000,
		EdgeRadius:      6000,
		NeutronFraction: 0.01,
		Seed:            0,
	}
}

// Generator builds a synthetic, distance-sorted StarSystem catalog.
type Generator struct {
	config  Config
	rand    *rand.Rand
	nameGen *NameGenerator
}

// NewGenerator creates a Generator, resolving a zero Seed to a random one.
func NewGenerator(config Config) *Generator {
	seed := config.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	r := rand.New(rand.NewSource(seed))
	return &Generator{config: config, rand: r, nameGen: NewNameGenerator(r)}
}

// Generate produces config.NumSystems systems sorted strictly ascending by
// distance from Sol, the invariant the global sequence must hold. System 0
// is always Sol itself, at the origin.
func (g *Generator) Generate() []models.StarSystem {
	systems := make([]models.StarSystem, g.config.NumSystems)
	systems[0] = models.NewStarSystem("Sol", 0, 0, 0, 0, GenerateMainStarType(g.rand))

	for i := 1; i < g.config.NumSystems; i++ {
		systems[i] = g.generateSystem()
	}

	sort.SliceStable(systems, func(i, j int) bool {
		return systems[i].DistFromSol < systems[j].DistFromSol
	})

	return systems
}

// generateSystem places one system at a random point on a sphere whose
// radius is drawn from a weighted core/mid/outer/edge distribution, the
// same shape a 2D galaxy disk generator would use, extended to 3D. The
// resulting band and neutron roll both feed into naming, so the two
// properties that define where a system sits in the catalog also define
// what it's called.
func (g *Generator) generateSystem() models.StarSystem {
	dist, band := g.generateDistance()

	// Uniform direction on the unit sphere.
	theta := g.rand.Float64() * 2 * math.Pi
	phi := math.Acos(2*g.rand.Float64() - 1)
	x := dist * math.Sin(phi) * math.Cos(theta)
	y := dist * math.Sin(phi) * math.Sin(theta)
	z := dist * math.Cos(phi)

	isNeutron := g.rand.Float64() < g.config.NeutronFraction
	mainStarType := GenerateMainStarType(g.rand)
	if isNeutron {
		mainStarType = "Neutron Star"
	}
	name := g.nameGen.GenerateSystemName(band, isNeutron)

	return models.NewStarSystem(name, float32(x), float32(y), float32(z), float32(dist), mainStarType)
}

// generateDistance applies a weighted radial distribution: more systems in
// the mid/outer bands than in the small core or the thin edge shell. It
// returns the band alongside the distance so the caller can name the
// system consistently with where it landed.
func (g *Generator) generateDistance() (float64, DistanceBand) {
	roll := g.rand.Float64()
	switch {
	case roll < 0.15:
		return g.rand.Float64() * g.config.CoreRadius, BandCore
	case roll < 0.50:
		return g.config.CoreRadius + g.rand.Float64()*(g.config.MidRadius-g.config.CoreRadius), BandMid
	case roll < 0.90:
		return g.config.MidRadius + g.rand.Float64()*(g.config.OuterRadius-g.config.MidRadius), BandOuter
	default:
		return g.config.OuterRadius + g.rand.Float64()*(g.config.EdgeRadius-g.config.OuterRadius), BandEdge
	}
}
