// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// clearEnv unsets every variable the config reads for the duration of t.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_VERSION", "WEATHER_API_KEY", "WEATHER_API_BASE_URL", "WEATHER_REQUEST_TIMEOUT",
		"WEATHER_RETRY_COUNT", "STORAGE_DB_DSN", "PREFS_UNITS", "PREFS_DEFAULT_LOCATION",
		"PREFS_FORECAST_DAYS", "WORKERS_HISTORY_LIMIT", "CONFIG",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierConfigWins verifies that a field set by an earlier source
// is not overwritten by a later one, while unset fields are filled.
func TestBuild_EarlierConfigWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Preferences: Preferences{Units: "imperial"}},
		&StructuredConfig{Preferences: Preferences{Units: "metric", DefaultLocation: "Oslo"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "imperial", cfg.Preferences.Units)
	assert.Equal(t, "Oslo", cfg.Preferences.DefaultLocation)
}

// TestBuild_ValidatesResult verifies that an invalid merged value is reported.
func TestBuild_ValidatesResult(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Preferences: Preferences{Units: "kelvin"}})

	_, err := b.build()
	require.ErrorIs(t, err, ErrInvalidPreferencesConfigs)
}

// ── withFlags / withEnv / withJSON / withDefaults ─────────────────────────────

func TestWithFlags_StoresPositionalArgs(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-u", "imperial", "forecast", "Paris", "5"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "imperial", b.configs[0].Preferences.Units)
	assert.Equal(t, []string{"forecast", "Paris", "5"}, b.args)
}

func TestWithFlags_BadFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"--no-such-flag"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithEnv_ReadsEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PREFS_DEFAULT_LOCATION", "Berlin")

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "Berlin", b.configs[0].Preferences.DefaultLocation)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()
	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withJSON()
	assert.Error(t, b.err)
}

func TestWithDefaults_AppendsDefaults(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	require.Len(t, b.configs, 1)
	assert.Equal(t, DefaultBaseURL, b.configs[0].Weather.BaseURL)
	assert.Equal(t, DefaultHistoryLimit, b.configs[0].Workers.HistoryLimit)
}

// ── GetStructuredConfig / GetClientConfig ─────────────────────────────────────

func TestGetStructuredConfig_Precedence(t *testing.T) {
	clearEnv(t)

	jsonPath := writeTempJSONConfig(t, map[string]any{
		"weather":     map[string]any{"request_timeout": "30s", "retry_count": 5},
		"preferences": map[string]any{"units": "metric", "default_location": "Madrid", "forecast_days": 7},
	})
	t.Setenv("CONFIG", jsonPath)
	t.Setenv("PREFS_DEFAULT_LOCATION", "Rome")

	cfg, args, err := GetStructuredConfig([]string{"--units", "imperial", "current"})
	require.NoError(t, err)

	assert.Equal(t, []string{"current"}, args)
	assert.Equal(t, "imperial", cfg.Preferences.Units)       // flag
	assert.Equal(t, "Rome", cfg.Preferences.DefaultLocation) // env
	assert.Equal(t, 7, cfg.Preferences.ForecastDays)         // json
	assert.Equal(t, 30*time.Second, cfg.Weather.RequestTimeout)
	assert.Equal(t, DefaultBaseURL, cfg.Weather.BaseURL) // default
}

func TestGetClientConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.Weather.BaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Weather.RequestTimeout)
	assert.Equal(t, DefaultRetryCount, cfg.Weather.RetryCount)
	assert.Equal(t, "metric", cfg.Preferences.Units)
	assert.Equal(t, DefaultForecastDays, cfg.Preferences.ForecastDays)
	assert.Equal(t, DefaultHistoryLimit, cfg.Workers.HistoryLimit)
	assert.NotEmpty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Weather.APIKey)
	assert.Empty(t, cfg.Args)
}

func TestGetClientConfig_APIKeyFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("WEATHER_API_KEY", "env-key-0123456789")

	cfg, err := GetClientConfig([]string{"now", "Tokyo"})
	require.NoError(t, err)
	assert.Equal(t, "env-key-0123456789", cfg.Weather.APIKey)
	assert.Equal(t, []string{"now", "Tokyo"}, cfg.Args)
}

func TestGetClientConfig_InvalidDays(t *testing.T) {
	clearEnv(t)

	_, err := GetClientConfig([]string{"--days", "11"})
	require.ErrorIs(t, err, ErrInvalidPreferencesConfigs)
}
