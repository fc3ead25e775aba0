// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrAPIKeyTooShort    = errors.New("api key is too short")
	ErrAPIKeyPlaceholder = errors.New("api key is a placeholder value")

	ErrInvalidLocation     = errors.New("location must be at least 2 characters and contain a letter")
	ErrInvalidForecastDays = errors.New("forecast days must be between 1 and 10")
	ErrInvalidDate         = errors.New("date must be in YYYY-MM-DD format")
)
