// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-weather-term/internal/adapter"
	"github.com/MKhiriev/go-weather-term/internal/logger"
	"github.com/MKhiriev/go-weather-term/internal/store"
	"github.com/MKhiriev/go-weather-term/models"
)

const dateLayout = time.DateOnly

type weatherService struct {
	weatherAdapter adapter.WeatherAdapter
	history        store.LocationHistoryRepository

	logger *logger.Logger
	now    func() time.Time
}

// NewWeatherService builds a WeatherService on top of the adapter. It
// expects validated input; wrap it with NewWeatherValidationService for
// user-facing callers.
func NewWeatherService(weatherAdapter adapter.WeatherAdapter, history store.LocationHistoryRepository, logger *logger.Logger) WeatherService {
	return &weatherService{
		weatherAdapter: weatherAdapter,
		history:        history,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *weatherService) Current(ctx context.Context, location string) (models.CurrentWeather, error) {
	resp, err := s.weatherAdapter.Current(ctx, location, false)
	if err != nil {
		return models.CurrentWeather{}, mapAdapterError("current weather", location, err)
	}

	s.record(ctx, location)
	return toCurrentWeather(resp), nil
}

func (s *weatherService) Forecast(ctx context.Context, location string, days int) (models.Forecast, error) {
	resp, err := s.weatherAdapter.Forecast(ctx, location, days)
	if err != nil {
		return models.Forecast{}, mapAdapterError("weather forecast", location, err)
	}

	s.record(ctx, location)
	return toForecast(resp), nil
}

func (s *weatherService) AirQuality(ctx context.Context, location string) (models.AirQuality, error) {
	resp, err := s.weatherAdapter.Current(ctx, location, true)
	if err != nil {
		return models.AirQuality{}, mapAdapterError("air quality", location, err)
	}

	s.record(ctx, location)
	return toAirQuality(resp)
}

func (s *weatherService) Astronomy(ctx context.Context, location, date string) (models.Astronomy, error) {
	if date == "" {
		date = s.now().Format(dateLayout)
	}

	resp, err := s.weatherAdapter.Astronomy(ctx, location, date)
	if err != nil {
		return models.Astronomy{}, mapAdapterError("astronomy", location, err)
	}

	s.record(ctx, location)
	return toAstronomy(resp, date), nil
}

func (s *weatherService) Search(ctx context.Context, term string) ([]models.LocationMatch, error) {
	matches, err := s.weatherAdapter.Search(ctx, term)
	if err != nil {
		return nil, mapAdapterError("locations", term, err)
	}

	return matches, nil
}

func (s *weatherService) Overview(ctx context.Context, location string, days int) (models.Overview, error) {
	var (
		overview models.Overview
		date     = s.now().Format(dateLayout)
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		resp, err := s.weatherAdapter.Current(gctx, location, false)
		if err != nil {
			return mapAdapterError("current weather", location, err)
		}
		overview.Current = toCurrentWeather(resp)
		return nil
	})

	g.Go(func() error {
		resp, err := s.weatherAdapter.Forecast(gctx, location, days)
		if err != nil {
			return mapAdapterError("weather forecast", location, err)
		}
		overview.Forecast = toForecast(resp)
		return nil
	})

	g.Go(func() error {
		resp, err := s.weatherAdapter.Astronomy(gctx, location, date)
		if err != nil {
			return mapAdapterError("astronomy", location, err)
		}
		overview.Astronomy = toAstronomy(resp, date)
		return nil
	})

	if err := g.Wait(); err != nil {
		return models.Overview{}, err
	}

	overview.FetchedAt = s.now()
	s.record(ctx, location)

	return overview, nil
}

// record adds location to the history. A failure only costs the history
// entry, so it is logged and swallowed.
func (s *weatherService) record(ctx context.Context, location string) {
	if s.history == nil {
		return
	}

	if err := s.history.Record(ctx, location); err != nil {
		s.logger.Warn().Err(err).
			Str("func", "weatherService.record").
			Str("location", location).
			Msg("failed to record location history")
	}
}
