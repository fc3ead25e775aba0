// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches WeatherAPI:
// locations, forecast day counts, history dates and API keys. Errors are
// sentinels so the humanizer can map them to friendly messages.
package validators

import "context"

// Validator checks a request value. When fields are given, only those
// fields are checked; an empty list checks all of them.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
