// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_Empty(t *testing.T) {
	cfg, args, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
	assert.Empty(t, args)
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, args, err := ParseFlags([]string{
		"--api-key", "flag-key-0123456789",
		"--api-base-url=http://localhost:1234/v1",
		"--timeout", "3s",
		"--retries", "1",
		"-d", "/tmp/test.db",
		"-u", "imperial",
		"-l", "Lisbon",
		"--days", "4",
		"--history-limit", "7",
		"-c", "/etc/wait.json",
	})
	require.NoError(t, err)
	assert.Empty(t, args)

	assert.Equal(t, "flag-key-0123456789", cfg.Weather.APIKey)
	assert.Equal(t, "http://localhost:1234/v1", cfg.Weather.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Weather.RequestTimeout)
	assert.Equal(t, 1, cfg.Weather.RetryCount)
	assert.Equal(t, "/tmp/test.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "imperial", cfg.Preferences.Units)
	assert.Equal(t, "Lisbon", cfg.Preferences.DefaultLocation)
	assert.Equal(t, 4, cfg.Preferences.ForecastDays)
	assert.Equal(t, 7, cfg.Workers.HistoryLimit)
	assert.Equal(t, "/etc/wait.json", cfg.JSONFilePath)
}

func TestParseFlags_StopsAtSubcommand(t *testing.T) {
	cfg, args, err := ParseFlags([]string{"-u", "metric", "forecast", "New York", "-u", "3"})
	require.NoError(t, err)
	assert.Equal(t, "metric", cfg.Preferences.Units)
	assert.Equal(t, []string{"forecast", "New York", "-u", "3"}, args)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"--unknown"}},
		{name: "bad duration", args: []string{"--timeout", "later"}},
		{name: "bad int", args: []string{"--days", "many"}},
		{name: "missing value", args: []string{"--api-key"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseFlags(tt.args)
			require.Error(t, err)
		})
	}
}

func TestParseFlags_Help(t *testing.T) {
	_, _, err := ParseFlags([]string{"--help"})
	require.ErrorIs(t, err, pflag.ErrHelp)
}
