// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	ruleWidth = 54
	hintSep   = " │ "
	quitHint  = "ctrl+c: quit"
	notAvail  = "N/A"
)

// renderPage lays out a screen: title, rule, body, rule and the key hints.
// ctrl+c is always listed since it quits from every screen.
func renderPage(title, body string, hints ...string) string {
	rule := bodyStyle.Render(ruleStyle.Render(strings.Repeat("─", ruleWidth)))

	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	footer := []string{bodyStyle.Render(helpStyle.Render(strings.Join(append(hints, quitHint), hintSep)))}

	return lipgloss.JoinVertical(lipgloss.Left,
		append([]string{
			titleStyle.Render(title),
			rule,
			"",
			bodyStyle.Render(body),
			"",
			rule,
		}, footer...)...,
	)
}

func valueOrNA(v string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return notAvail
}

// truncate shortens v to at most limit runes, ending with "..." when cut.
func truncate(v string, limit int) string {
	runes := []rune(v)
	switch {
	case limit <= 0 || len(runes) <= limit:
		return v
	case limit <= 3:
		return string(runes[:limit])
	default:
		return string(runes[:limit-3]) + "..."
	}
}
