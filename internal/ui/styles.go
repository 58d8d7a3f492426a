// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used by the renderer.
type Styles struct {
	Title        lipgloss.Style
	Score        lipgloss.Style
	Board        lipgloss.Style
	Snake        lipgloss.Style
	Food         lipgloss.Style
	GameOver     lipgloss.Style
	MenuItem     lipgloss.Style
	MenuSelected lipgloss.Style
	Help         lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Score:        lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Board:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")),
		Snake:        lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Food:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		GameOver:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		MenuItem:     lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		MenuSelected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Help:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}
