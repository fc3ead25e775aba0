// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// loadEnv reads WAIT's environment variables (WEATHER_*, STORAGE_DB_*,
// PREFS_*, WORKERS_* and CONFIG) into a fresh StructuredConfig. Unset
// variables leave their fields zero so lower-precedence sources can fill them.
func loadEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}
	return &cfg, nil
}
