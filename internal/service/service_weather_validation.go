// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-weather-term/internal/validators"
	"github.com/MKhiriev/go-weather-term/models"
)

// WeatherValidationService sanitizes and validates lookup input before it
// reaches the wrapped WeatherService.
type WeatherValidationService struct {
	inner     WeatherService
	validator validators.Validator
}

func NewWeatherValidationService() WeatherServiceWrapper {
	return &WeatherValidationService{
		validator: validators.NewWeatherRequestValidator(),
	}
}

func (v *WeatherValidationService) Current(ctx context.Context, location string) (models.CurrentWeather, error) {
	req := models.WeatherRequest{Location: validators.SanitizeLocation(location)}
	if err := v.validate(ctx, req); err != nil {
		return models.CurrentWeather{}, err
	}

	return v.inner.Current(ctx, req.Location)
}

func (v *WeatherValidationService) Forecast(ctx context.Context, location string, days int) (models.Forecast, error) {
	req := models.WeatherRequest{Location: validators.SanitizeLocation(location), Days: days}
	if err := v.validate(ctx, req, validators.FieldLocation, validators.FieldDays); err != nil {
		return models.Forecast{}, err
	}

	return v.inner.Forecast(ctx, req.Location, req.Days)
}

func (v *WeatherValidationService) AirQuality(ctx context.Context, location string) (models.AirQuality, error) {
	req := models.WeatherRequest{Location: validators.SanitizeLocation(location)}
	if err := v.validate(ctx, req); err != nil {
		return models.AirQuality{}, err
	}

	return v.inner.AirQuality(ctx, req.Location)
}

func (v *WeatherValidationService) Astronomy(ctx context.Context, location, date string) (models.Astronomy, error) {
	req := models.WeatherRequest{Location: validators.SanitizeLocation(location), Date: date}
	if err := v.validate(ctx, req, validators.FieldLocation, validators.FieldDate); err != nil {
		return models.Astronomy{}, err
	}

	return v.inner.Astronomy(ctx, req.Location, req.Date)
}

func (v *WeatherValidationService) Search(ctx context.Context, term string) ([]models.LocationMatch, error) {
	req := models.WeatherRequest{Location: validators.SanitizeLocation(term)}
	if err := v.validate(ctx, req); err != nil {
		return nil, err
	}

	return v.inner.Search(ctx, req.Location)
}

func (v *WeatherValidationService) Overview(ctx context.Context, location string, days int) (models.Overview, error) {
	req := models.WeatherRequest{Location: validators.SanitizeLocation(location), Days: days}
	if err := v.validate(ctx, req, validators.FieldLocation, validators.FieldDays); err != nil {
		return models.Overview{}, err
	}

	return v.inner.Overview(ctx, req.Location, req.Days)
}

func (v *WeatherValidationService) Wrap(wrapped WeatherService) WeatherService {
	v.inner = wrapped
	return v
}

func (v *WeatherValidationService) validate(ctx context.Context, req models.WeatherRequest, fields ...string) error {
	if err := v.validator.Validate(ctx, req, fields...); err != nil {
		return fmt.Errorf("error validating weather request: %w", err)
	}
	return nil
}
