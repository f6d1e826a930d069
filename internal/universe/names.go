// File: internal/universe/names.go
// Project: Neutron Router
// Description: Synthetic catalog generation: system names
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

// Package universe generates synthetic star catalogs for exercising the
// indexed file store, the neutron graph builder, and both routers without
// requiring a real catalog on the order of hundreds of millions of rows
// (ingesting one of those is someone else's job). Adapted from a procedural
// universe generator: the naming strategies survive, reweighted against
// each system's own distance band and neutron status instead of a flat
// faction assignment; the planet/description machinery does not survive at
// all (see DESIGN.md).
package universe

import (
	"fmt"
	"math/rand"
)

// DistanceBand classifies a synthetic system by how far it sits from Sol,
// matching the core/mid/outer/edge radius bands Generator.generateDistance
// rolls against. GenerateSystemName uses it to weight naming strategy.
type DistanceBand int

const (
	BandCore DistanceBand = iota
	BandMid
	BandOuter
	BandEdge
)

// NameGenerator produces unique star system names, tracking everything
// already handed out so a catalog never contains a duplicate name.
//
// Thread Safety: NOT thread-safe; callers must serialize access.
type NameGenerator struct {
	rand      *rand.Rand
	usedNames map[string]bool
}

// NewNameGenerator creates a name generator seeded from r.
func NewNameGenerator(r *rand.Rand) *NameGenerator {
	return &NameGenerator{
		rand:      r,
		usedNames: make(map[string]bool),
	}
}

var greekLetters = []string{
	"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta", "Theta",
	"Iota", "Kappa", "Lambda", "Mu", "Nu", "Xi", "Omicron", "Pi",
	"Rho", "Sigma", "Tau", "Upsilon", "Phi", "Chi", "Psi", "Omega",
}

var constellations = []string{
	"Centauri", "Eridani", "Ceti", "Draconis", "Leonis", "Aquarii", "Orionis",
	"Scorpii", "Cassiopeiae", "Andromedae", "Lyrae", "Cygni", "Aquilae",
	"Ursae", "Bootis", "Virginis", "Geminorum", "Tauri", "Sagittarii",
	"Capricorni", "Piscium", "Arietis", "Cancri", "Librae", "Persei",
	"Herculis", "Ophiuchi", "Serpentis", "Coronae", "Hydrae",
}

var realStars = []string{
	"Sirius", "Canopus", "Arcturus", "Vega", "Capella", "Rigel", "Procyon",
	"Betelgeuse", "Achernar", "Altair", "Aldebaran", "Antares", "Spica",
	"Pollux", "Fomalhaut", "Deneb", "Regulus", "Adhara", "Castor", "Bellatrix",
	"Elnath", "Miaplacidus", "Alnilam", "Alnitak", "Alnair", "Alioth",
	"Dubhe", "Mirfak", "Wezen", "Sargas", "Kaus Australis", "Avior",
}

var namePrefix = []string{
	"New", "Neo", "Nova", "Omega", "Proxima", "Ultima", "Prima", "Kepler",
	"Ross", "Gliese", "Wolf", "Lacaille", "Luyten", "Barnard", "Kruger",
	"Groombridge", "Lalande", "Struve", "Innes", "Stein",
}

var nameSuffix = []string{
	"Prime", "Secundus", "Tertius", "Major", "Minor", "Station", "Outpost",
	"Haven", "Refuge", "Bastion", "Forge", "Reach", "Crossing", "Gate",
	"Nexus", "Hub", "Point", "Junction", "Terminal", "Threshold",
}

// GenerateSystemName produces a unique name for a system in band, retrying
// up to 100 times on collision before falling back to a guaranteed-unique
// "System-<N>" form. isNeutron routes to a dedicated pulsar-catalog
// strategy instead of the four band-weighted ones below: a neutron star
// earns a sky-coordinate designation, never a constellation name or a
// settlement-flavored compound.
func (ng *NameGenerator) GenerateSystemName(band DistanceBand, isNeutron bool) string {
	const maxAttempts = 100

	for i := 0; i < maxAttempts; i++ {
		var name string
		if isNeutron {
			name = ng.generatePulsarName()
		} else {
			name = ng.generateBandedName(band)
		}

		if !ng.usedNames[name] {
			ng.usedNames[name] = true
			return name
		}
	}

	return ng.generateFallbackName()
}

// generateBandedName weights strategy selection by how far a system sits
// from Sol. Nearby systems draw heavily on real bright-star names and Bayer
// (Greek + constellation) designations, the way Earth's own closest
// neighbors are actually named; farther out, real names give way to
// settlement-flavored compounds and finally to bare survey numbering, since
// a sparse, barely-surveyed system is far less likely to have earned a
// proper name than a catalog entry.
func (ng *NameGenerator) generateBandedName(band DistanceBand) string {
	roll := ng.rand.Float64()
	switch band {
	case BandCore:
		switch {
		case roll < 0.45:
			return realStars[ng.rand.Intn(len(realStars))]
		case roll < 0.80:
			return ng.generateGreekConstellation()
		default:
			return ng.generateCompoundName()
		}
	case BandMid:
		switch {
		case roll < 0.40:
			return ng.generateCompoundName()
		case roll < 0.70:
			return ng.generateGreekConstellation()
		default:
			return ng.generateCatalogName()
		}
	case BandOuter:
		switch {
		case roll < 0.55:
			return ng.generateCatalogName()
		case roll < 0.85:
			return ng.generateCompoundName()
		default:
			return ng.generateGreekConstellation()
		}
	default: // BandEdge
		if roll < 0.75 {
			return ng.generateCatalogName()
		}
		return ng.generateCompoundName()
	}
}

func (ng *NameGenerator) generateGreekConstellation() string {
	greek := greekLetters[ng.rand.Intn(len(greekLetters))]
	constellation := constellations[ng.rand.Intn(len(constellations))]
	return fmt.Sprintf("%s %s", greek, constellation)
}

func (ng *NameGenerator) generateCatalogName() string {
	prefix := namePrefix[ng.rand.Intn(len(namePrefix))]
	number := ng.rand.Intn(9999) + 1
	return fmt.Sprintf("%s-%d", prefix, number)
}

func (ng *NameGenerator) generateCompoundName() string {
	prefix := namePrefix[ng.rand.Intn(len(namePrefix))]
	suffix := nameSuffix[ng.rand.Intn(len(nameSuffix))]
	return fmt.Sprintf("%s %s", prefix, suffix)
}

// generatePulsarName mimics a pulsar catalog designation: "PSR J" followed
// by compressed right-ascension and declination digits, the format real
// neutron-star catalogs use in place of a proper name.
func (ng *NameGenerator) generatePulsarName() string {
	ra := ng.rand.Intn(24)*100 + ng.rand.Intn(60) // compressed HHMM, 0000-2359
	decSign := "+"
	if ng.rand.Intn(2) == 0 {
		decSign = "-"
	}
	dec := ng.rand.Intn(90)*100 + ng.rand.Intn(60) // compressed DDMM, 0000-8959
	return fmt.Sprintf("PSR J%04d%s%04d", ra, decSign, dec)
}

func (ng *NameGenerator) generateFallbackName() string {
	counter := len(ng.usedNames)
	name := fmt.Sprintf("System-%d", counter)
	ng.usedNames[name] = true
	return name
}

// mainStarTypes are the non-neutron spectral classes a synthetic system can
// roll. "Neutron Star" is deliberately absent here: it is assigned
// separately by the generator at the configured neutron fraction, since it
// is the one label that carries routing significance.
var mainStarTypes = []string{
	"O (Blue)", "B (Blue-White)", "A (White)", "F (Yellow-White)",
	"G (Yellow)", "K (Orange)", "M (Red Dwarf)", "White Dwarf",
}

// GenerateMainStarType picks a non-neutron spectral class at random.
func GenerateMainStarType(r *rand.Rand) string {
	return mainStarTypes[r.Intn(len(mainStarTypes))]
}
