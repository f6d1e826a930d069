// File: cmd/route/main.go
// Project: Neutron Router
// Description: Neutron-boosted route finder CLI
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"

	"github.com/JoshuaAFerguson/neutron-router/internal/codec"
	ierrors "github.com/JoshuaAFerguson/neutron-router/internal/errors"
	"github.com/JoshuaAFerguson/neutron-router/internal/indexedfile"
	"github.com/JoshuaAFerguson/neutron-router/internal/logger"
	"github.com/JoshuaAFerguson/neutron-router/internal/models"
	"github.com/JoshuaAFerguson/neutron-router/internal/router"
)

var log = logger.WithComponent("route")

const defaultD float32 = 400

func usage() {
	fmt.Fprintln(os.Stderr, "usage: route <systems-path> <neutrons-path> <start-idx> <goal-idx> [D]")
}

func main() {
	outcome := ierrors.NewOutcome()
	if err := run(); err != nil {
		outcome.Record(err)
		outcome.LogSummary()
		exitFor(err)
	}
}

func run() error {
	if len(os.Args) < 5 {
		usage()
		return ierrors.New(ierrors.Setup, fmt.Errorf("missing required arguments"))
	}

	systemsPath := os.Args[1]
	neutronsPath := os.Args[2]

	start, err := strconv.Atoi(os.Args[3])
	if err != nil || start < 0 {
		usage()
		return ierrors.New(ierrors.Semantic, fmt.Errorf("invalid start index %q: %w", os.Args[3], err))
	}
	goal, err := strconv.Atoi(os.Args[4])
	if err != nil || goal < 0 {
		usage()
		return ierrors.New(ierrors.Semantic, fmt.Errorf("invalid goal index %q: %w", os.Args[4], err))
	}

	d := defaultD
	if len(os.Args) >= 6 {
		parsed, err := strconv.ParseFloat(os.Args[5], 32)
		if err != nil || parsed <= 0 {
			usage()
			return ierrors.New(ierrors.Setup, fmt.Errorf("invalid D %q: %w", os.Args[5], err))
		}
		d = float32(parsed)
	}

	runID := uuid.New()

	systemsMap, err := indexedfile.Open(systemsPath, codec.DecodeStarSystemRecord)
	if err != nil {
		return err
	}
	defer systemsMap.Close()

	neutronsMap, err := indexedfile.Open(neutronsPath, codec.DecodeNeutronEntryRecord)
	if err != nil {
		return err
	}
	defer neutronsMap.Close()

	if uint32(start) >= systemsMap.Len() {
		return ierrors.Newf(ierrors.Semantic, "start index %d out of range (catalog has %d systems)", start, systemsMap.Len())
	}
	if uint32(goal) >= systemsMap.Len() {
		return ierrors.Newf(ierrors.Semantic, "goal index %d out of range (catalog has %d systems)", goal, systemsMap.Len())
	}

	systems := make([]models.StarSystem, systemsMap.Len())
	for i := uint32(0); i < systemsMap.Len(); i++ {
		s, err := systemsMap.Get(i)
		if err != nil {
			return err
		}
		systems[i] = s
	}

	entries := make([]codec.NeutronEntryRecord, neutronsMap.Len())
	for i := uint32(0); i < neutronsMap.Len(); i++ {
		e, err := neutronsMap.Get(i)
		if err != nil {
			return err
		}
		entries[i] = e
	}

	log.Info("[run %s] routing %s -> %s (D=%.1f) over %d systems, %d neutrons", runID, systems[start].Name, systems[goal].Name, d, len(systems), len(entries))

	r := router.NewNeutronRouter(systems, entries, d)
	path := r.NeutronAStar(start, goal)
	if path == nil {
		return ierrors.Newf(ierrors.Unreachable, "no route from %s to %s", systems[start].Name, systems[goal].Name)
	}

	for _, idx := range path {
		fmt.Printf("%d\t%s\n", idx, systems[idx].Name)
	}
	log.Info("[run %s] route found: %d jumps", runID, len(path)-1)
	return nil
}

func exitFor(err error) {
	if f, ok := err.(*ierrors.Fatal); ok {
		fmt.Fprintf(os.Stderr, "route: %s\n", f.Error())
	} else {
		fmt.Fprintf(os.Stderr, "route: %v\n", err)
	}
	os.Exit(1)
}
