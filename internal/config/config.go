// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the wait
// client. It aggregates all sub-configurations and is populated by merging
// values from command-line flags, environment variables, an optional JSON
// file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Weather holds the WeatherAPI connection settings.
	Weather Weather `envPrefix:"WEATHER_"`

	// Storage holds the local sqlite settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Preferences holds the initial display preferences. Values stored in
	// the local database take precedence once the user changes them.
	Preferences Preferences `envPrefix:"PREFS_"`

	// Workers holds configuration for background maintenance jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Version overrides the version reported by the client.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Weather holds settings of the outbound WeatherAPI client.
type Weather struct {
	// APIKey is the operator supplied key. When set and valid it takes
	// precedence over a key embedded at build time.
	// Env: WEATHER_API_KEY
	APIKey string `env:"API_KEY"`

	// BaseURL is the WeatherAPI root (e.g. "https://api.weatherapi.com/v1").
	// Env: WEATHER_API_BASE_URL
	BaseURL string `env:"API_BASE_URL"`

	// RequestTimeout bounds a single outbound request (e.g. "10s").
	// Env: WEATHER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is the number of retries for transient failures.
	// Env: WEATHER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DB holds the sqlite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the sqlite database.
type DB struct {
	// DSN is the sqlite file path or DSN (e.g. "/home/me/.config/wait/wait.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Preferences holds the startup display preferences.
type Preferences struct {
	// Units is "metric" or "imperial".
	// Env: PREFS_UNITS
	Units string `env:"UNITS"`

	// DefaultLocation is looked up when no location is given.
	// Env: PREFS_DEFAULT_LOCATION
	DefaultLocation string `env:"DEFAULT_LOCATION"`

	// ForecastDays is the default forecast length, 1 to 10.
	// Env: PREFS_FORECAST_DAYS
	ForecastDays int `env:"FORECAST_DAYS"`
}

// Workers holds configuration for background maintenance jobs.
type Workers struct {
	// HistoryLimit is the number of location history rows kept.
	// Env: WORKERS_HISTORY_LIMIT
	HistoryLimit int `env:"HISTORY_LIMIT"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (the first source
// with a non-zero field wins):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Positional arguments left after flag parsing are returned alongside.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults()

	cfg, err := b.build()
	return cfg, b.args, err
}
