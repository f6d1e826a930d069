// File: cmd/buildneutrons/main.go
// Project: Neutron Router
// Description: Neutron adjacency graph builder tool
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"

	"github.com/JoshuaAFerguson/neutron-router/internal/codec"
	ierrors "github.com/JoshuaAFerguson/neutron-router/internal/errors"
	"github.com/JoshuaAFerguson/neutron-router/internal/indexedfile"
	"github.com/JoshuaAFerguson/neutron-router/internal/logger"
	"github.com/JoshuaAFerguson/neutron-router/internal/models"
	"github.com/JoshuaAFerguson/neutron-router/internal/neutrongraph"
)

var log = logger.WithComponent("buildneutrons")

const defaultD float32 = 400

func usage() {
	fmt.Fprintln(os.Stderr, "usage: buildneutrons <systems-path> <output-neutrons-path> [D]")
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

	systemsPath := os.Args[1]
	outputPath := os.Args[2]

	d := defaultD
	if len(os.Args) >= 4 {
		parsed, err := strconv.ParseFloat(os.Args[3], 32)
		if err != nil || parsed <= 0 {
			usage()
			return ierrors.New(ierrors.Setup, fmt.Errorf("invalid D %q: %w", os.Args[3], err))
		}
		d = float32(parsed)
	}

	runID := uuid.New()
	log.Info("[run %s] opening %s", runID, systemsPath)

	systemsMap, err := indexedfile.Open(systemsPath, codec.DecodeStarSystemRecord)
	if err != nil {
		return err
	}
	defer systemsMap.Close()

	systems := make([]models.StarSystem, systemsMap.Len())
	for i := uint32(0); i < systemsMap.Len(); i++ {
		s, err := systemsMap.Get(i)
		if err != nil {
			return err
		}
		systems[i] = s
	}

	log.Info("[run %s] loaded %d systems, building neutron graph at D=%.1f", runID, len(systems), d)

	entries, err := neutrongraph.Build(context.Background(), systems, d)
	if err != nil {
		return err
	}

	if err := indexedfile.Write(outputPath, entries); err != nil {
		return err
	}

	log.Info("[run %s] wrote %d neutron entries to %s", runID, len(entries), outputPath)
	return nil
}

func exitFor(err error) {
	if f, ok := err.(*ierrors.Fatal); ok {
		fmt.Fprintf(os.Stderr, "buildneutrons: %s\n", f.Error())
	} else {
		fmt.Fprintf(os.Stderr, "buildneutrons: %v\n", err)
	}
	os.Exit(1)
}
