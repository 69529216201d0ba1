// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Theme identifies one of the fixed scratch-card decorations.
type Theme string

const (
	ThemeSweater Theme = "sweater"
	ThemeStars   Theme = "stars"
	ThemeLights  Theme = "lights"
	ThemeRibbon  Theme = "ribbon"
)

// Themes lists every known theme in display order.
var Themes = []Theme{ThemeSweater, ThemeStars, ThemeLights, ThemeRibbon}

// IsValid reports whether t is one of the known themes.
func (t Theme) IsValid() bool {
	for _, known := range Themes {
		if t == known {
			return true
		}
	}
	return false
}

func (t Theme) String() string {
	return string(t)
}

// ParseTheme normalises raw (trim + lower case) and returns the matching
// theme. ok is false for unknown values.
func ParseTheme(raw string) (theme Theme, ok bool) {
	theme = Theme(strings.ToLower(strings.TrimSpace(raw)))
	return theme, theme.IsValid()
}
