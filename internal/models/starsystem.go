// File: internal/models/starsystem.go
// Project: Neutron Router
// Description: Data model for a star system and the lexicographic route cost
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

// Package models holds the immutable record types shared by the indexed file
// store, the neutron graph builder, and both routers.
package models

import "math"

// neutronStarType is the literal star-type label that marks a system as a
// neutron star. Any other label is treated as non-neutron.
const neutronStarType = "Neutron Star"

// StarSystem is one entry in the globally sorted catalog. The zero value is
// never meaningful; construct with NewStarSystem so IsNeutron stays derived,
// never hand-set out of sync with MainStarType. DistFromSol is supplied by
// the caller, not computed from X, Y, Z.
//
// Systems are stored sorted strictly ascending by DistFromSol; the index
// of a system in that sequence is its stable identifier everywhere else in
// this repository.
type StarSystem struct {
	Name         string
	MainStarType string
	X, Y, Z      float32
	DistFromSol  float32
	IsNeutron    bool
}

// NewStarSystem builds a StarSystem record, deriving IsNeutron from
// mainStarType: true iff the label is exactly "Neutron Star".
func NewStarSystem(name string, x, y, z, distFromSol float32, mainStarType string) StarSystem {
	return StarSystem{
		Name:         name,
		MainStarType: mainStarType,
		X:            x,
		Y:            y,
		Z:            z,
		DistFromSol:  distFromSol,
		IsNeutron:    mainStarType == neutronStarType,
	}
}

// Distance returns the Euclidean distance between two systems' 3D positions.
func Distance(a, b StarSystem) float32 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	dz := float64(a.Z - b.Z)
	return float32(math.Sqrt(dx*dx + dy*dy + dz*dz))
}

// HScore is the lexicographic (jumps, distance) route cost used as both
// g-cost and f-cost throughout the routers. Comparisons must never collapse
// the pair into a single scalar: fewer jumps always wins, distance only
// breaks ties.
type HScore struct {
	Jumps    int64
	Distance float32
}

// Less reports whether h is strictly better than other: fewer jumps wins,
// and on equal jumps the smaller distance wins.
func (h HScore) Less(other HScore) bool {
	if h.Jumps != other.Jumps {
		return h.Jumps < other.Jumps
	}
	return h.Distance < other.Distance
}

// Add returns the componentwise sum of two costs.
func (h HScore) Add(other HScore) HScore {
	return HScore{Jumps: h.Jumps + other.Jumps, Distance: h.Distance + other.Distance}
}

// Equal reports whether two costs compare equal in both components.
func (h HScore) Equal(other HScore) bool {
	return h.Jumps == other.Jumps && h.Distance == other.Distance
}

// CeilDiv returns ceil(a/b) as an integer jump count, used throughout the
// heuristics. b must be > 0.
func CeilDiv(a, b float32) int64 {
	return int64(math.Ceil(float64(a / b)))
}
