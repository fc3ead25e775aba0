// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Version overrides the linker-provided build version when non-empty.
	Version string
}

// ClientWeather holds settings used by the WeatherAPI adapter.
type ClientWeather struct {
	// APIKey is the operator override passed to the key resolver.
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
	RetryCount     int
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientPreferences holds startup display preferences.
type ClientPreferences struct {
	Units           string
	DefaultLocation string
	ForecastDays    int
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// HistoryLimit is the number of location history rows kept.
	HistoryLimit int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App         ClientApp
	Weather     ClientWeather
	Storage     ClientStorage
	Preferences ClientPreferences
	Workers     ClientWorkers

	// Args are the positional arguments left after flag parsing.
	Args []string
}

// GetClientConfig builds and validates the client config from args (without
// the program name), the environment and an optional JSON file.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, rest, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg, rest)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig, args []string) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Weather: ClientWeather{
			APIKey:         cfg.Weather.APIKey,
			BaseURL:        cfg.Weather.BaseURL,
			RequestTimeout: cfg.Weather.RequestTimeout,
			RetryCount:     cfg.Weather.RetryCount,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Preferences: ClientPreferences{
			Units:           cfg.Preferences.Units,
			DefaultLocation: cfg.Preferences.DefaultLocation,
			ForecastDays:    cfg.Preferences.ForecastDays,
		},
		Workers: ClientWorkers{HistoryLimit: cfg.Workers.HistoryLimit},
		Args:    args,
	}
}
