// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-scratch-gift/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	focusStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	scratchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("240"))
)

// themeLook is how a theme decorates the card behind the overlay.
type themeLook struct {
	title   string
	pattern string
	style   lipgloss.Style
}

var themeLooks = map[models.Theme]themeLook{
	models.ThemeSweater: {
		title:   "Cozy Sweater",
		pattern: "x-",
		style:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("124")),
	},
	models.ThemeStars: {
		title:   "Starry Night",
		pattern: "*  . ",
		style:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Background(lipgloss.Color("17")),
	},
	models.ThemeLights: {
		title:   "Holiday Lights",
		pattern: "o ",
		style:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Background(lipgloss.Color("22")),
	},
	models.ThemeRibbon: {
		title:   "Gift Ribbon",
		pattern: "~=",
		style:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Background(lipgloss.Color("90")),
	},
}

func lookOf(theme models.Theme) themeLook {
	if look, ok := themeLooks[theme]; ok {
		return look
	}
	return themeLook{title: theme.String(), pattern: " ", style: lipgloss.NewStyle()}
}
