// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-weather-term/models"

type reportKind int

const (
	reportCurrent reportKind = iota
	reportAirQuality
	reportForecast
	reportAstronomy
)

func (k reportKind) title() string {
	switch k {
	case reportAirQuality:
		return "Air Quality"
	case reportForecast:
		return "Forecast"
	case reportAstronomy:
		return "Astronomy"
	default:
		return "Current Weather"
	}
}

type reportLoadedMsg struct {
	kind     reportKind
	location string
	text     string
	err      error
}

type prefsLoadedMsg struct {
	prefs models.UnitPreferences
	saved bool
	err   error
}

type historyLoadedMsg struct {
	entries []models.LocationHistoryEntry
	cleared bool
	err     error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
