// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

const scratchRune = '▒'

type cellKind int

const (
	cellCovered cellKind = iota
	cellBackground
	cellText
)

func (m revealModel) View() string {
	if m.showError {
		return m.errorOverlay.View()
	}
	if m.loading || m.gift == nil || m.surface == nil {
		return renderPage("SCRATCH GIFT", m.spinner.View()+" Loading your gift...", "esc: back")
	}

	look := lookOf(m.gift.Theme)

	var b strings.Builder
	b.WriteString(titleStyle.Render("SCRATCH GIFT · " + look.title))
	b.WriteString("\n")
	if m.revealed {
		b.WriteString(statusStyle.Render("Your gift is revealed!"))
	} else {
		b.WriteString(helpStyle.Render("Scratch the card with your mouse to reveal your gift!"))
	}
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(m.surface.Fraction()))
	b.WriteString("\n\n")

	b.WriteString(m.cardView(look))
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	hotKeys := "esc: back · q: quit"
	if m.revealed && m.imageURL != "" {
		hotKeys = "c: copy image link · " + hotKeys
	}
	b.WriteString(helpStyle.Render(hotKeys))

	return b.String()
}

// cardView draws the themed card with the message and, unless hidden, the
// remaining overlay cells on top.
func (m revealModel) cardView(look themeLook) string {
	bounds := m.surface.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	content, text := m.cardContent(look, width, height)
	textStyle := look.style.Bold(true)
	margin := strings.Repeat(" ", cardLeft)

	styles := map[cellKind]lipgloss.Style{
		cellCovered:    scratchStyle,
		cellBackground: look.style,
		cellText:       textStyle,
	}

	rows := make([]string, 0, height)
	for y := 0; y < height; y++ {
		var row strings.Builder
		row.WriteString(margin)

		var run strings.Builder
		runKind := cellKind(-1)
		flush := func() {
			if run.Len() > 0 {
				row.WriteString(styles[runKind].Render(run.String()))
				run.Reset()
			}
		}

		for x := 0; x < width; x++ {
			kind, r := cellBackground, content[y][x]
			switch {
			case !m.overlayHidden && m.surface.Covered(x, y):
				kind, r = cellCovered, scratchRune
			case text[y][x]:
				kind = cellText
			}

			if kind != runKind {
				flush()
				runKind = kind
			}
			run.WriteRune(r)
		}
		flush()

		rows = append(rows, row.String())
	}

	return strings.Join(rows, "\n")
}

// cardContent lays the theme pattern out on a width x height grid and centers
// the message and image link on it. text marks the cells holding text.
func (m revealModel) cardContent(look themeLook, width, height int) (content [][]rune, text [][]bool) {
	pattern := []rune(look.pattern)
	if len(pattern) == 0 {
		pattern = []rune{' '}
	}

	content = make([][]rune, height)
	text = make([][]bool, height)
	for y := range content {
		content[y] = make([]rune, width)
		text[y] = make([]bool, width)
		for x := range content[y] {
			content[y][x] = pattern[(x+y)%len(pattern)]
		}
	}

	lines := wrapText(m.gift.Message, width-4)
	if m.imageURL != "" {
		lines = append(lines, "", fitText("[image] "+m.imageURL, width-4))
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	top := (height - len(lines)) / 2
	for i, line := range lines {
		y := top + i
		left := (width - utf8.RuneCountInString(line)) / 2
		x := left
		for _, r := range line {
			content[y][x] = r
			text[y][x] = true
			x++
		}
	}

	return content, text
}
