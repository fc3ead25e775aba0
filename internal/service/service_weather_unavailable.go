// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-weather-term/models"
)

// unavailableWeatherService stands in when no API key could be resolved.
// Every lookup fails with the resolver error so the UI can show its
// remediation text.
type unavailableWeatherService struct {
	reason error
}

func NewUnavailableWeatherService(reason error) WeatherService {
	return &unavailableWeatherService{reason: reason}
}

func (s *unavailableWeatherService) Current(context.Context, string) (models.CurrentWeather, error) {
	return models.CurrentWeather{}, s.reason
}

func (s *unavailableWeatherService) Forecast(context.Context, string, int) (models.Forecast, error) {
	return models.Forecast{}, s.reason
}

func (s *unavailableWeatherService) AirQuality(context.Context, string) (models.AirQuality, error) {
	return models.AirQuality{}, s.reason
}

func (s *unavailableWeatherService) Astronomy(context.Context, string, string) (models.Astronomy, error) {
	return models.Astronomy{}, s.reason
}

func (s *unavailableWeatherService) Search(context.Context, string) ([]models.LocationMatch, error) {
	return nil, s.reason
}

func (s *unavailableWeatherService) Overview(context.Context, string, int) (models.Overview, error) {
	return models.Overview{}, s.reason
}
