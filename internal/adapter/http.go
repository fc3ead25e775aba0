// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-weather-term/internal/config"
	"github.com/MKhiriev/go-weather-term/internal/logger"
	"github.com/MKhiriev/go-weather-term/internal/utils"
	"github.com/MKhiriev/go-weather-term/models"
	"github.com/go-resty/resty/v2"
)

const (
	requestIDHeader = "X-Request-ID"

	pathCurrent   = "/current.json"
	pathForecast  = "/forecast.json"
	pathAstronomy = "/astronomy.json"
	pathSearch    = "/search.json"
)

type weatherAPIAdapter struct {
	client *utils.HTTPClient
	apiKey string

	logger *logger.Logger
}

// NewWeatherAPIAdapter constructs the REST implementation of
// [WeatherAdapter] for cfg.BaseURL. apiKey is sent as the "key" query
// parameter of every request.
func NewWeatherAPIAdapter(cfg config.ClientWeather, apiKey string, log *logger.Logger) (WeatherAdapter, error) {
	if apiKey == "" {
		return nil, ErrInvalidAPIKey
	}

	client := utils.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout, cfg.RetryCount)

	return &weatherAPIAdapter{
		client: client,
		apiKey: apiKey,
		logger: log,
	}, nil
}

// Current implements [WeatherAdapter]: GET /current.json?q=&aqi=.
func (w *weatherAPIAdapter) Current(ctx context.Context, q string, withAQI bool) (models.CurrentResponse, error) {
	var out models.CurrentResponse

	aqi := "no"
	if withAQI {
		aqi = "yes"
	}

	err := w.get(ctx, pathCurrent, map[string]string{"q": q, "aqi": aqi}, &out)
	return out, err
}

// Forecast implements [WeatherAdapter]: GET /forecast.json?q=&days=.
func (w *weatherAPIAdapter) Forecast(ctx context.Context, q string, days int) (models.ForecastResponse, error) {
	var out models.ForecastResponse

	err := w.get(ctx, pathForecast, map[string]string{
		"q":      q,
		"days":   strconv.Itoa(days),
		"aqi":    "no",
		"alerts": "no",
	}, &out)
	return out, err
}

// Astronomy implements [WeatherAdapter]: GET /astronomy.json?q=&dt=.
func (w *weatherAPIAdapter) Astronomy(ctx context.Context, q string, date string) (models.AstronomyResponse, error) {
	var out models.AstronomyResponse

	err := w.get(ctx, pathAstronomy, map[string]string{"q": q, "dt": date}, &out)
	return out, err
}

// Search implements [WeatherAdapter]: GET /search.json?q=.
func (w *weatherAPIAdapter) Search(ctx context.Context, q string) ([]models.LocationMatch, error) {
	var out []models.LocationMatch

	if err := w.get(ctx, pathSearch, map[string]string{"q": q}, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.LocationMatch{}
	}

	return out, nil
}

func (w *weatherAPIAdapter) get(ctx context.Context, path string, params map[string]string, out any) error {
	ctx, requestID := utils.EnsureRequestID(ctx)

	log := w.logger.With().
		Str("endpoint", path).
		Str("request_id", requestID).
		Logger()

	resp, err := w.request(ctx, requestID, params).Get(path)
	if err != nil {
		err = mapTransportError(path, err)
		log.Debug().Err(err).Msg("weather api request failed")
		return err
	}

	log.Debug().
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("weather api response")

	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s: %w: %w", path, ErrDecodeResponse, err)
	}

	return nil
}

func (w *weatherAPIAdapter) request(ctx context.Context, requestID string, params map[string]string) *resty.Request {
	return w.client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, requestID).
		SetQueryParams(params).
		SetQueryParam("key", w.apiKey)
}
