// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-weather-term/internal/adapter"
	"github.com/MKhiriev/go-weather-term/internal/config"
	"github.com/MKhiriev/go-weather-term/internal/logger"
	"github.com/MKhiriev/go-weather-term/internal/store"
	"github.com/MKhiriev/go-weather-term/models"
)

type Services struct {
	WeatherService     WeatherService
	PreferencesService PreferencesService
	HistoryService     HistoryService
	AppInfoService     AppInfoService
}

// NewServices wires the client services. When weatherAdapter is nil the
// weather service fails every lookup with keyErr.
func NewServices(
	weatherAdapter adapter.WeatherAdapter,
	keyErr error,
	storages *store.ClientStorages,
	info models.AppBuildInfo,
	cfg *config.ClientConfig,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(info, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	var weather WeatherService
	if weatherAdapter == nil {
		weather = NewUnavailableWeatherService(keyErr)
	} else {
		weather = NewWeatherValidationService().Wrap(
			NewWeatherService(weatherAdapter, storages.LocationHistoryRepository, logger),
		)
	}

	return &Services{
		WeatherService:     weather,
		PreferencesService: NewPreferencesService(storages.PreferencesRepository, cfg.Preferences, logger),
		HistoryService:     NewHistoryService(storages.LocationHistoryRepository, cfg.Workers, logger),
		AppInfoService:     appInfo,
	}, nil
}
