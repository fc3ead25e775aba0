// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-weather-term/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, keyErr error) string {
	var b strings.Builder

	b.WriteString("Application: WAIT (Weather App In Terminal)\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\n\n")

	meta := info.KeyMetadata()
	b.WriteString("Embedded API key: ")
	if meta.HasEmbeddedKey {
		b.WriteString("yes (built ")
		b.WriteString(valueOrNA(meta.BuildTime))
		b.WriteString(", version ")
		b.WriteString(valueOrNA(meta.Version))
		b.WriteString(")")
	} else {
		b.WriteString("no")
	}
	b.WriteString("\n")

	b.WriteString("Active key source: ")
	if keyErr != nil {
		b.WriteString(string(models.KeySourceNone))
	} else {
		b.WriteString(string(info.KeySource()))
	}
	b.WriteString("\n\nWeather data provided by WeatherAPI.com")

	return renderPage("ABOUT", b.String(), "esc: back")
}
