// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CurrentWeather is the normalized view of a current conditions lookup.
// All measurements are stored in metric units; conversion happens at render
// time according to [UnitPreferences].
type CurrentWeather struct {
	Location     string
	LocalTime    string
	LastUpdated  string
	Condition    string
	IsDay        bool
	TemperatureC float64
	FeelsLikeC   float64
	Humidity     int
	Cloud        int
	WindKph      float64
	GustKph      float64
	WindDir      string
	PressureMb   float64
	VisibilityKm float64
	PrecipMm     float64
	UV           float64
}

// ForecastDay is a single day of a [Forecast].
type ForecastDay struct {
	Date          string
	Condition     string
	MaxTempC      float64
	MinTempC      float64
	AvgTempC      float64
	MaxWindKph    float64
	TotalPrecipMm float64
	AvgHumidity   float64
	ChanceOfRain  int
	UV            float64
	Sunrise       string
	Sunset        string
}

// Forecast is a multi-day forecast for one location.
type Forecast struct {
	Location string
	Days     []ForecastDay
}

// AirQuality holds pollutant concentrations (μg/m³) rounded to two decimals,
// plus the US-EPA (1-6) and UK DEFRA (1-10) indexes.
type AirQuality struct {
	Location     string
	CO           float64
	O3           float64
	NO2          float64
	SO2          float64
	PM25         float64
	PM10         float64
	USEPAIndex   int
	GBDefraIndex int
}

// Astronomy is the sun and moon timetable for one location and date.
type Astronomy struct {
	Location         string
	Date             string
	Sunrise          string
	Sunset           string
	Moonrise         string
	Moonset          string
	MoonPhase        string
	MoonIllumination int
	IsSunUp          bool
	IsMoonUp         bool
}

// Overview bundles the lookups shown on the TUI dashboard.
type Overview struct {
	Current   CurrentWeather
	Forecast  Forecast
	Astronomy Astronomy
	FetchedAt time.Time
}

// LocationMatch is a single search.json result.
type LocationMatch struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	URL     string  `json:"url"`
}

// DisplayName joins the non-empty name parts with commas.
func (m LocationMatch) DisplayName() string {
	return JoinLocation(m.Name, m.Region, m.Country)
}
