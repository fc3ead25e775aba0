// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrAirQualityUnavailable = errors.New("air quality data not available for this location")

	ErrUnknownPreferenceField = errors.New("unknown preference field")
	ErrUnknownPreset          = errors.New("unknown unit preset")
	ErrInvalidPreferences     = errors.New("invalid preferences")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)
