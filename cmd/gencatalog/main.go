// File: cmd/gencatalog/main.go
// Project: Neutron Router
// Description: Synthetic star catalog generation tool
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
	"github.com/JoshuaAFerguson/neutron-router/internal/universe"
)

var log = logger.WithComponent("gencatalog")

func usage() {
	fmt.Fprintln(os.Stderr, "usage: gencatalog <output-path> <num-systems> [seed] [neutron-fraction]")
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
	if len(os.Args) < 3 {
		usage()
		return ierrors.New(ierrors.Setup, fmt.Errorf("missing required arguments"))
	}

	outputPath := os.Args[1]
	numSystems, err := strconv.Atoi(os.Args[2])
	if err != nil || numSystems < 1 {
		usage()
		return ierrors.New(ierrors.Setup, fmt.Errorf("invalid num-systems %q: %w", os.Args[2], err))
	}

	config := universe.DefaultConfig()
	config.NumSystems = numSystems

	if len(os.Args) >= 4 {
		seed, err := strconv.ParseInt(os.Args[3], 10, 64)
		if err != nil {
			usage()
			return ierrors.New(ierrors.Setup, fmt.Errorf("invalid seed %q: %w", os.Args[3], err))
		}
		config.Seed = seed
	}

	if len(os.Args) >= 5 {
		fraction, err := strconv.ParseFloat(os.Args[4], 64)
		if err != nil || fraction < 0 || fraction > 1 {
			usage()
			return ierrors.New(ierrors.Setup, fmt.Errorf("invalid neutron-fraction %q: %w", os.Args[4], err))
		}
		config.NeutronFraction = fraction
	}

	runID := uuid.New()
	log.Info("[run %s] generating %d systems (neutron fraction %.4f) -> %s", runID, config.NumSystems, config.NeutronFraction, outputPath)

	gen := universe.NewGenerator(config)
	systems := gen.Generate()

	records := make([]codec.StarSystemRecord, len(systems))
	neutronCount := 0
	for i, s := range systems {
		records[i] = codec.StarSystemRecord{System: s}
		if s.IsNeutron {
			neutronCount++
		}
	}

	if err := indexedfile.Write(outputPath, records); err != nil {
		return err
	}

	log.Info("[run %s] wrote %d systems (%d neutrons) to %s", runID, len(records), neutronCount, outputPath)
	return nil
}

func exitFor(err error) {
	var fatal *ierrors.Fatal
	if asFatal(err, &fatal) {
		fmt.Fprintf(os.Stderr, "gencatalog: %s\n", fatal.Error())
	} else {
		fmt.Fprintf(os.Stderr, "gencatalog: %v\n", err)
	}
	os.Exit(1)
}

func asFatal(err error, target **ierrors.Fatal) bool {
	f, ok := err.(*ierrors.Fatal)
	if ok {
		*target = f
	}
	return ok
}
