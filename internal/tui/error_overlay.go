// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

const (
	overlayMaxWidth = 60
	overlayMinWidth = 24
)

// errorOverlayModel is the modal that reports a humanized error until the
// user dismisses it.
type errorOverlayModel struct {
	message string
}

// View renders the box, narrowed to fit termWidth when it is known.
func (m errorOverlayModel) View(termWidth int) string {
	width := overlayMaxWidth
	if termWidth > 0 && termWidth-8 < width {
		width = max(termWidth-8, overlayMinWidth)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		errorStyle.Render("Error"),
		"",
		m.message,
		"",
		helpStyle.Render("enter / esc: close"),
	)
	return overlayBoxStyle.Width(width).Render(content)
}
