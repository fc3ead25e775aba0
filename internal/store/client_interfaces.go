// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-weather-term/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocationHistoryRepository keeps the recently looked up locations.
type LocationHistoryRepository interface {
	// Record inserts location or bumps its timestamp and lookup counter.
	Record(ctx context.Context, location string) error
	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]models.LocationHistoryEntry, error)
	// Prune keeps the keep newest entries and returns the number removed.
	Prune(ctx context.Context, keep int) (int64, error)
	// Clear removes all entries.
	Clear(ctx context.Context) error
}

// PreferencesRepository stores the single row of unit preferences.
type PreferencesRepository interface {
	Get(ctx context.Context) (models.UnitPreferences, error)
	Save(ctx context.Context, prefs models.UnitPreferences) error
}
