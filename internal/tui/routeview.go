// File: internal/tui/routeview.go
// Project: Neutron Router
// Description: Interactive jump-by-jump route inspector
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

// Package tui renders an already-computed route one jump at a time so an
// operator can step through it, highlighting neutron waypoints. This is
// read-only inspection of a finished path, never graph mutation: nothing
// here recomputes or edits the route.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JoshuaAFerguson/neutron-router/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")). // Cyan
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")) // Gray

	neutronStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228")). // Yellow
			Bold(true)

	currentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")). // Cyan
			Bold(true)

	visitedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")) // Green

	upcomingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")) // White

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")). // Gray
			MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(1, 2)
)

// RouteViewModel is a bubbletea model stepping through a concrete,
// already-computed path of global system indices.
type RouteViewModel struct {
	systems []models.StarSystem
	path    []int
	d       float32
	cursor  int // index into path, the jump the operator is currently inspecting
}

// NewRouteViewModel builds a viewer over path, a sequence of global system
// indices as returned by router.NeutronRouter.NeutronAStar or
// router.LocalRouter.AStar.
func NewRouteViewModel(systems []models.StarSystem, path []int, d float32) RouteViewModel {
	return RouteViewModel{systems: systems, path: path, d: d}
}

func (m RouteViewModel) Init() tea.Cmd {
	return nil
}

func (m RouteViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "right", "n", " ":
		if m.cursor < len(m.path)-1 {
			m.cursor++
		}
	case "left", "p":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g":
		m.cursor = 0
	case "G":
		m.cursor = len(m.path) - 1
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m RouteViewModel) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("NEUTRON ROUTE VIEWER"))
	sb.WriteString("\n")
	sb.WriteString(subtitleStyle.Render(fmt.Sprintf("%d jumps, %d waypoints", len(m.path)-1, len(m.path))))
	sb.WriteString("\n\n")

	var body strings.Builder
	for i, idx := range m.path {
		sys := m.systems[idx]
		line := fmt.Sprintf("%3d  %-24s %s", idx, sys.Name, sys.MainStarType)

		switch {
		case i == m.cursor:
			line = currentStyle.Render("> " + line)
		case i < m.cursor:
			line = visitedStyle.Render("  " + line)
		default:
			line = upcomingStyle.Render("  " + line)
		}
		if sys.IsNeutron {
			line += " " + neutronStyle.Render("[neutron]")
		}
		body.WriteString(line + "\n")

		if i < len(m.path)-1 {
			next := m.systems[m.path[i+1]]
			dist := models.Distance(sys, next)
			effD := m.d
			if sys.IsNeutron {
				effD = 4 * m.d
			}
			body.WriteString(subtitleStyle.Render(fmt.Sprintf("      |  jump %.1f / %.1f\n", dist, effD)))
		}
	}

	sb.WriteString(boxStyle.Render(body.String()))
	sb.WriteString(helpStyle.Render("\n← / → step   g / G first/last   q quit"))

	return sb.String()
}
