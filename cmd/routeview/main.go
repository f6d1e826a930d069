// File: cmd/routeview/main.go
// Project: Neutron Router
// Description: Interactive jump-by-jump viewer over an already-computed route
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

package main

import (
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JoshuaAFerguson/neutron-router/internal/codec"
	ierrors "github.com/JoshuaAFerguson/neutron-router/internal/errors"
	"github.com/JoshuaAFerguson/neutron-router/internal/indexedfile"
	"github.com/JoshuaAFerguson/neutron-router/internal/models"
	"github.com/JoshuaAFerguson/neutron-router/internal/router"
	"github.com/JoshuaAFerguson/neutron-router/internal/tui"
)

const defaultD float32 = 400

func usage() {
	fmt.Fprintln(os.Stderr, "usage: routeview <systems-path> <neutrons-path> <start-idx> <goal-idx> [D]")
}

func main() {
	if err := run(); err != nil {
		if f, ok := err.(*ierrors.Fatal); ok {
			fmt.Fprintf(os.Stderr, "routeview: %s\n", f.Error())
		} else {
			fmt.Fprintf(os.Stderr, "routeview: %v\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 5 {
		usage()
		return ierrors.New(ierrors.Setup, fmt.Errorf("missing required arguments"))
	}

	start, err := strconv.Atoi(os.Args[3])
	if err != nil {
		usage()
		return ierrors.New(ierrors.Semantic, fmt.Errorf("invalid start index %q: %w", os.Args[3], err))
	}
	goal, err := strconv.Atoi(os.Args[4])
	if err != nil {
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

	systemsMap, err := indexedfile.Open(os.Args[1], codec.DecodeStarSystemRecord)
	if err != nil {
		return err
	}
	defer systemsMap.Close()

	neutronsMap, err := indexedfile.Open(os.Args[2], codec.DecodeNeutronEntryRecord)
	if err != nil {
		return err
	}
	defer neutronsMap.Close()

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

	r := router.NewNeutronRouter(systems, entries, d)
	path := r.NeutronAStar(start, goal)
	if path == nil {
		return ierrors.Newf(ierrors.Unreachable, "no route from %s to %s", systems[start].Name, systems[goal].Name)
	}

	model := tui.NewRouteViewModel(systems, path, d)
	p := tea.NewProgram(model)
	_, err = p.Run()
	return err
}
