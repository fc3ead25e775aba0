// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-weather-term/internal/logger"
	"github.com/MKhiriev/go-weather-term/models"
)

type preferencesRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewPreferencesRepository constructs a sqlite-backed [PreferencesRepository].
func NewPreferencesRepository(db *DB, logger *logger.Logger) PreferencesRepository {
	return &preferencesRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Get returns the saved preferences or [ErrPreferencesNotFound].
func (r *preferencesRepository) Get(ctx context.Context) (models.UnitPreferences, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPreferencesQuery()
	if err != nil {
		return models.UnitPreferences{}, err
	}

	var p models.UnitPreferences
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(
		&p.Preset,
		&p.Temperature,
		&p.WindSpeed,
		&p.Pressure,
		&p.Visibility,
		&p.Precipitation,
		&p.DefaultLocation,
		&p.ForecastDays,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UnitPreferences{}, ErrPreferencesNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "preferencesRepository.Get").
			Msg("failed to read preferences")
		return models.UnitPreferences{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return p, nil
}

// Save upserts the single preferences row.
func (r *preferencesRepository) Save(ctx context.Context, prefs models.UnitPreferences) error {
	query, args, err := buildSavePreferencesQuery(prefs, r.now().UTC())
	if err != nil {
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "preferencesRepository.Save").
			Str("preset", prefs.Preset).
			Msg("failed to save preferences")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
