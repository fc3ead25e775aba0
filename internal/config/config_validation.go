// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"

	"github.com/MKhiriev/go-weather-term/models"
)

// validate checks the merged [StructuredConfig]. Only fields that are set
// are checked; completeness is enforced by [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Preferences.Units != "" && !validUnits(cfg.Preferences.Units) {
		return ErrInvalidPreferencesConfigs
	}

	if cfg.Weather.RequestTimeout < 0 || cfg.Weather.RetryCount < 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	u, err := url.Parse(cfg.Weather.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Weather.RequestTimeout <= 0 || cfg.Weather.RetryCount < 0 {
		return ErrInvalidAdapterConfigs
	}

	if !validUnits(cfg.Preferences.Units) {
		return ErrInvalidPreferencesConfigs
	}

	if cfg.Preferences.ForecastDays < 1 || cfg.Preferences.ForecastDays > 10 {
		return ErrInvalidPreferencesConfigs
	}

	if cfg.Workers.HistoryLimit <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func validUnits(units string) bool {
	return units == models.PresetMetric || units == models.PresetImperial
}
