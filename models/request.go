// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// WeatherRequest carries the user input of a lookup. Days is used by
// forecasts, Date (YYYY-MM-DD, empty for today) by astronomy lookups.
type WeatherRequest struct {
	Location string
	Days     int
	Date     string
}
