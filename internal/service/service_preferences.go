// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-weather-term/internal/config"
	"github.com/MKhiriev/go-weather-term/internal/logger"
	"github.com/MKhiriev/go-weather-term/internal/store"
	"github.com/MKhiriev/go-weather-term/internal/validators"
	"github.com/MKhiriev/go-weather-term/models"
)

// Fields accepted by PreferencesService.Toggle.
const (
	PrefTemperature   = "temperature"
	PrefWindSpeed     = "wind_speed"
	PrefPressure      = "pressure"
	PrefVisibility    = "visibility"
	PrefPrecipitation = "precipitation"
)

type preferencesService struct {
	preferencesRepository store.PreferencesRepository
	defaults              models.UnitPreferences

	logger *logger.Logger
}

func NewPreferencesService(preferencesRepository store.PreferencesRepository, cfg config.ClientPreferences, logger *logger.Logger) PreferencesService {
	return &preferencesService{
		preferencesRepository: preferencesRepository,
		defaults:              DefaultPreferences(cfg),
		logger:                logger,
	}
}

// DefaultPreferences derives the preferences used before anything is saved.
func DefaultPreferences(cfg config.ClientPreferences) models.UnitPreferences {
	prefs := models.MetricPreferences()
	if cfg.Units == models.PresetImperial {
		prefs = models.ImperialPreferences()
	}

	prefs.DefaultLocation = validators.SanitizeLocation(cfg.DefaultLocation)
	if cfg.ForecastDays > 0 {
		prefs.ForecastDays = cfg.ForecastDays
	}

	return prefs
}

func (s *preferencesService) Get(ctx context.Context) (models.UnitPreferences, error) {
	prefs, err := s.preferencesRepository.Get(ctx)
	if errors.Is(err, store.ErrPreferencesNotFound) {
		return s.defaults, nil
	}
	if err != nil {
		return models.UnitPreferences{}, fmt.Errorf("error getting preferences: %w", err)
	}

	return prefs.Normalize(), nil
}

func (s *preferencesService) Save(ctx context.Context, prefs models.UnitPreferences) (models.UnitPreferences, error) {
	prefs.DefaultLocation = validators.SanitizeLocation(prefs.DefaultLocation)
	if err := validatePreferences(prefs); err != nil {
		return models.UnitPreferences{}, err
	}

	prefs = prefs.Normalize()
	if err := s.preferencesRepository.Save(ctx, prefs); err != nil {
		return models.UnitPreferences{}, fmt.Errorf("error saving preferences: %w", err)
	}

	s.logger.Debug().
		Str("func", "preferencesService.Save").
		Str("preset", prefs.Preset).
		Msg("preferences saved")

	return prefs, nil
}

func (s *preferencesService) Toggle(ctx context.Context, field string) (models.UnitPreferences, error) {
	prefs, err := s.Get(ctx)
	if err != nil {
		return models.UnitPreferences{}, err
	}

	switch field {
	case PrefTemperature:
		prefs.Temperature = flip(prefs.Temperature, models.Celsius, models.Fahrenheit)
	case PrefWindSpeed:
		prefs.WindSpeed = flip(prefs.WindSpeed, models.Kph, models.Mph)
	case PrefPressure:
		prefs.Pressure = flip(prefs.Pressure, models.Millibar, models.InchHg)
	case PrefVisibility:
		prefs.Visibility = flip(prefs.Visibility, models.Kilometres, models.Miles)
	case PrefPrecipitation:
		prefs.Precipitation = flip(prefs.Precipitation, models.Millimetre, models.Inch)
	default:
		return models.UnitPreferences{}, fmt.Errorf("%w: %q", ErrUnknownPreferenceField, field)
	}

	return s.Save(ctx, prefs)
}

func (s *preferencesService) SetPreset(ctx context.Context, preset string) (models.UnitPreferences, error) {
	var next models.UnitPreferences
	switch preset {
	case models.PresetMetric:
		next = models.MetricPreferences()
	case models.PresetImperial:
		next = models.ImperialPreferences()
	default:
		return models.UnitPreferences{}, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}

	current, err := s.Get(ctx)
	if err != nil {
		return models.UnitPreferences{}, err
	}
	next.DefaultLocation = current.DefaultLocation
	next.ForecastDays = current.ForecastDays

	return s.Save(ctx, next)
}

// flip returns b when v is a and a otherwise.
func flip(v, a, b string) string {
	if v == a {
		return b
	}
	return a
}

func validatePreferences(p models.UnitPreferences) error {
	checks := []struct {
		name    string
		value   string
		allowed [2]string
	}{
		{PrefTemperature, p.Temperature, [2]string{models.Celsius, models.Fahrenheit}},
		{PrefWindSpeed, p.WindSpeed, [2]string{models.Kph, models.Mph}},
		{PrefPressure, p.Pressure, [2]string{models.Millibar, models.InchHg}},
		{PrefVisibility, p.Visibility, [2]string{models.Kilometres, models.Miles}},
		{PrefPrecipitation, p.Precipitation, [2]string{models.Millimetre, models.Inch}},
	}
	for _, c := range checks {
		if c.value != c.allowed[0] && c.value != c.allowed[1] {
			return fmt.Errorf("%w: %s %q", ErrInvalidPreferences, c.name, c.value)
		}
	}

	if p.ForecastDays < validators.MinForecastDays || p.ForecastDays > validators.MaxForecastDays {
		return fmt.Errorf("%w: %w", ErrInvalidPreferences, validators.ErrInvalidForecastDays)
	}

	if p.DefaultLocation != "" && !validators.IsValidLocation(p.DefaultLocation) {
		return fmt.Errorf("%w: %w", ErrInvalidPreferences, validators.ErrInvalidLocation)
	}

	return nil
}
