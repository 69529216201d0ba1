// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := "Remove \"" + m.message + "\" from history?\n"
	content += helpStyle.Render("The gift link keeps working.") + "\n\n"
	content += "y: yes    n: no"
	return overlayBoxStyle.Render(content)
}
