// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-weather-term/models"
)

const (
	DefaultBaseURL        = "https://api.weatherapi.com/v1"
	DefaultRequestTimeout = 10 * time.Second
	DefaultRetryCount     = 2
	DefaultForecastDays   = 3
	DefaultHistoryLimit   = 20

	dbFileName = "wait.db"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Weather: Weather{
			BaseURL:        DefaultBaseURL,
			RequestTimeout: DefaultRequestTimeout,
			RetryCount:     DefaultRetryCount,
		},
		Storage: Storage{
			DB: DB{DSN: defaultDSN()},
		},
		Preferences: Preferences{
			Units:        models.PresetMetric,
			ForecastDays: DefaultForecastDays,
		},
		Workers: Workers{HistoryLimit: DefaultHistoryLimit},
	}
}

// defaultDSN places the database in the user config dir, or the working
// directory when that is unknown.
func defaultDSN() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return dbFileName
	}

	return filepath.Join(dir, "wait", dbFileName)
}
