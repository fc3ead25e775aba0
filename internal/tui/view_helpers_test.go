// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"London", 10, "London"},
		{"London", 0, "London"},
		{"Llanfairpwllgwyngyll", 10, "Llanfai..."},
		{"São Paulo", 3, "São"},
		{"Zürich, Switzerland", 9, "Zürich..."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, truncate(tt.in, tt.limit), "truncate(%q, %d)", tt.in, tt.limit)
	}
}

func TestValueOrNA(t *testing.T) {
	assert.Equal(t, notAvail, valueOrNA("  "))
	assert.Equal(t, "Paris", valueOrNA(" Paris "))
}

func TestRenderPage(t *testing.T) {
	page := renderPage("SETTINGS", "Units: metric", "esc: back", "x: clear history")

	assert.Contains(t, page, "SETTINGS")
	assert.Contains(t, page, "Units: metric")
	assert.Contains(t, page, "esc: back │ x: clear history │ ctrl+c: quit")

	empty := renderPage("ABOUT", "   ")
	assert.Contains(t, empty, "-")
	assert.True(t, strings.Contains(empty, quitHint))
}

func TestErrorOverlay_View(t *testing.T) {
	overlay := errorOverlayModel{message: "Location not found"}

	assert.Contains(t, overlay.View(0), "Location not found")
	assert.Contains(t, overlay.View(30), "enter / esc: close")
}
