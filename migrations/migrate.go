// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the sqlite schema of the local client database:
// location history and saved preferences.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var schemaFS embed.FS

var errNilDB = errors.New("db is nil")

// Migrate brings db up to the latest schema and returns the versions it
// applied, none when the schema was already current.
func Migrate(ctx context.Context, db *sql.DB) ([]int64, error) {
	if db == nil {
		return nil, fmt.Errorf("migration error: %w", errNilDB)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, schemaFS)
	if err != nil {
		return nil, fmt.Errorf("migration error loading schema: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	applied := make([]int64, 0, len(results))
	for _, r := range results {
		applied = append(applied, r.Source.Version)
	}
	return applied, nil
}
