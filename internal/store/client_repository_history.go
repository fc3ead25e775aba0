// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-weather-term/internal/logger"
	"github.com/MKhiriev/go-weather-term/models"
)

type locationHistoryRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewLocationHistoryRepository constructs a sqlite-backed
// [LocationHistoryRepository].
func NewLocationHistoryRepository(db *DB, logger *logger.Logger) LocationHistoryRepository {
	return &locationHistoryRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *locationHistoryRepository) Record(ctx context.Context, location string) error {
	log := logger.FromContext(ctx)

	location = strings.TrimSpace(location)
	if location == "" {
		return ErrEmptyLocation
	}

	query, args, err := buildRecordLocationQuery(location, r.now().UTC())
	if err != nil {
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "locationHistoryRepository.Record").
			Msg("failed to upsert location history")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *locationHistoryRepository) Recent(ctx context.Context, limit int) ([]models.LocationHistoryEntry, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		return []models.LocationHistoryEntry{}, nil
	}

	query, args, err := buildRecentLocationsQuery(limit)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "locationHistoryRepository.Recent").
			Int("limit", limit).
			Msg("failed to query location history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.LocationHistoryEntry, 0, limit)
	for rows.Next() {
		var e models.LocationHistoryEntry
		if err = rows.Scan(&e.Location, &e.LookedUpAt, &e.Lookups); err != nil {
			log.Err(err).
				Str("func", "locationHistoryRepository.Recent").
				Msg("failed to scan location history row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (r *locationHistoryRepository) Prune(ctx context.Context, keep int) (int64, error) {
	log := logger.FromContext(ctx)

	if keep < 0 {
		keep = 0
	}

	query, args, err := buildPruneLocationsQuery(keep)
	if err != nil {
		return 0, err
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "locationHistoryRepository.Prune").
			Int("keep", keep).
			Msg("failed to prune location history")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return removed, nil
}

func (r *locationHistoryRepository) Clear(ctx context.Context) error {
	query, args, err := buildClearLocationsQuery()
	if err != nil {
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "locationHistoryRepository.Clear").
			Msg("failed to clear location history")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
