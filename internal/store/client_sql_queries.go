// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-weather-term/models"
)

const (
	tableLocationHistory = "location_history"
	tablePreferences     = "preferences"

	preferencesRowID = 1
)

func buildRecordLocationQuery(location string, at time.Time) (string, []any, error) {
	query, args, err := sq.Insert(tableLocationHistory).
		Columns("location", "looked_up_at", "lookups").
		Values(location, at, 1).
		Suffix("ON CONFLICT(location) DO UPDATE SET looked_up_at = excluded.looked_up_at, lookups = lookups + 1").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildRecentLocationsQuery(limit int) (string, []any, error) {
	query, args, err := sq.Select("location", "looked_up_at", "lookups").
		From(tableLocationHistory).
		OrderBy("looked_up_at DESC", "location").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildPruneLocationsQuery(keep int) (string, []any, error) {
	newest := sq.Select("location").
		From(tableLocationHistory).
		OrderBy("looked_up_at DESC", "location").
		Limit(uint64(keep))

	newestSQL, newestArgs, err := newest.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	query, args, err := sq.Delete(tableLocationHistory).
		Where(sq.Expr("location NOT IN ("+newestSQL+")", newestArgs...)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildClearLocationsQuery() (string, []any, error) {
	query, args, err := sq.Delete(tableLocationHistory).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildGetPreferencesQuery() (string, []any, error) {
	query, args, err := sq.Select(
		"preset", "temperature", "wind_speed", "pressure",
		"visibility", "precipitation", "default_location", "forecast_days",
	).
		From(tablePreferences).
		Where(sq.Eq{"id": preferencesRowID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSavePreferencesQuery(p models.UnitPreferences, at time.Time) (string, []any, error) {
	query, args, err := sq.Insert(tablePreferences).
		Columns(
			"id", "preset", "temperature", "wind_speed", "pressure",
			"visibility", "precipitation", "default_location", "forecast_days", "updated_at",
		).
		Values(
			preferencesRowID, p.Preset, p.Temperature, p.WindSpeed, p.Pressure,
			p.Visibility, p.Precipitation, p.DefaultLocation, p.ForecastDays, at,
		).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			preset = excluded.preset,
			temperature = excluded.temperature,
			wind_speed = excluded.wind_speed,
			pressure = excluded.pressure,
			visibility = excluded.visibility,
			precipitation = excluded.precipitation,
			default_location = excluded.default_location,
			forecast_days = excluded.forecast_days,
			updated_at = excluded.updated_at`).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
