// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-weather-term/internal/logger"
	"github.com/MKhiriev/go-weather-term/migrations"
)

// DB is the sqlite handle shared by the history and preferences
// repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate upgrades the schema, logging the versions it applied.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		return err
	}
	if len(applied) > 0 {
		db.logger.Info().Ints64("versions", applied).Msg("database schema upgraded")
	}
	return nil
}
