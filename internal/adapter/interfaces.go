// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer to the WeatherAPI REST service.
//
// The primary abstraction is [WeatherAdapter], which decouples the service
// layer from HTTP. Error values defined in errors.go are mapped from HTTP
// status codes and WeatherAPI error codes by mapHTTPError so that callers can
// use [errors.Is] (e.g. [ErrLocationNotFound] for 404 or code 1006,
// [ErrInvalidAPIKey] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-weather-term/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/weather_adapter_mock.go -package=mock

// WeatherAdapter fetches raw WeatherAPI responses. Implementations attach
// the API key to every request and never include it in returned errors.
type WeatherAdapter interface {
	// Current fetches current conditions for q, with the air_quality block
	// when withAQI is true.
	Current(ctx context.Context, q string, withAQI bool) (models.CurrentResponse, error)

	// Forecast fetches a days-long daily forecast for q.
	Forecast(ctx context.Context, q string, days int) (models.ForecastResponse, error)

	// Astronomy fetches sun and moon data for q on date (YYYY-MM-DD).
	Astronomy(ctx context.Context, q string, date string) (models.AstronomyResponse, error)

	// Search returns locations matching q. An empty result is not an error.
	Search(ctx context.Context, q string) ([]models.LocationMatch, error)
}
