// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client business logic between the adapters,
// the local store and the user interfaces (CLI and TUI).
package service

import (
	"context"

	"github.com/MKhiriev/go-weather-term/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=WeatherServiceWrapper

// WeatherService performs weather lookups. Every successful lookup records
// its location in the history.
type WeatherService interface {
	// Current returns the current conditions for location.
	Current(ctx context.Context, location string) (models.CurrentWeather, error)

	// Forecast returns a daily forecast of 1 to 10 days.
	Forecast(ctx context.Context, location string, days int) (models.Forecast, error)

	// AirQuality returns pollutant concentrations and indexes, or
	// ErrAirQualityUnavailable when the location has no data.
	AirQuality(ctx context.Context, location string) (models.AirQuality, error)

	// Astronomy returns sun and moon times for date (YYYY-MM-DD). An empty
	// date means today.
	Astronomy(ctx context.Context, location, date string) (models.Astronomy, error)

	// Search returns locations matching term.
	Search(ctx context.Context, term string) ([]models.LocationMatch, error)

	// Overview fetches current conditions, forecast and astronomy
	// concurrently. It fails when any of the lookups fails.
	Overview(ctx context.Context, location string, days int) (models.Overview, error)
}

// WeatherServiceWrapper defines middleware composition for WeatherService.
// Implementations wrap an existing WeatherService to add behavior such as
// validation.
type WeatherServiceWrapper interface {
	Wrap(WeatherService) WeatherService // returns a decorated WeatherService applying additional behavior
}

// PreferencesService manages the persisted unit preferences.
type PreferencesService interface {
	// Get returns the saved preferences, or the configured defaults when
	// nothing has been saved yet.
	Get(ctx context.Context) (models.UnitPreferences, error)

	// Save validates, normalizes and persists prefs and returns what was
	// stored.
	Save(ctx context.Context, prefs models.UnitPreferences) (models.UnitPreferences, error)

	// Toggle flips the unit of a single measurement (see the Pref*
	// constants) and persists the result with a recomputed preset.
	Toggle(ctx context.Context, field string) (models.UnitPreferences, error)

	// SetPreset switches every unit to the metric or imperial preset,
	// keeping the default location and forecast length.
	SetPreset(ctx context.Context, preset string) (models.UnitPreferences, error)
}

// HistoryService exposes the location history.
type HistoryService interface {
	// Recent returns up to limit entries, newest first. A non-positive limit
	// means the configured history limit.
	Recent(ctx context.Context, limit int) ([]models.LocationHistoryEntry, error)

	// Prune drops everything but the configured number of newest entries.
	Prune(ctx context.Context) (int64, error)

	// Clear removes all entries.
	Clear(ctx context.Context) error
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
