// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/MKhiriev/go-weather-term/models"
)

const (
	FieldLocation = "location"
	FieldDays     = "days"
	FieldDate     = "date"
)

const (
	MinForecastDays = 1
	MaxForecastDays = 10

	dateLayout = "2006-01-02"
)

type WeatherRequestValidator struct {
}

func NewWeatherRequestValidator() Validator {
	return &WeatherRequestValidator{}
}

// Validate checks a [models.WeatherRequest]. Without field names only the
// location is checked, since days and date are optional for most lookups.
func (v *WeatherRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.WeatherRequest:
		return v.validateWeatherRequest(ctx, value, fields...)
	case *models.WeatherRequest:
		return v.validateWeatherRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *WeatherRequestValidator) validateWeatherRequest(_ context.Context, req models.WeatherRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLocation}
	}

	for _, f := range fields {
		switch f {
		case FieldLocation:
			if !IsValidLocation(req.Location) {
				return ErrInvalidLocation
			}
		case FieldDays:
			if req.Days < MinForecastDays || req.Days > MaxForecastDays {
				return ErrInvalidForecastDays
			}
		case FieldDate:
			if req.Date == "" {
				continue
			}
			if _, err := time.Parse(dateLayout, req.Date); err != nil {
				return ErrInvalidDate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// IsValidLocation accepts trimmed input of at least two characters that
// contains at least one letter.
func IsValidLocation(location string) bool {
	trimmed := strings.TrimSpace(location)
	if len([]rune(trimmed)) < 2 {
		return false
	}

	return strings.IndexFunc(trimmed, unicode.IsLetter) >= 0
}

// SanitizeLocation trims the input and collapses runs of whitespace.
func SanitizeLocation(location string) string {
	return strings.Join(strings.Fields(location), " ")
}
