// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strings"
)

// APILocation mirrors the "location" object returned by every WeatherAPI
// endpoint.
type APILocation struct {
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	TzID      string  `json:"tz_id"`
	LocalTime string  `json:"localtime"`
}

// DisplayName renders "Name, Region, Country" skipping empty parts.
func (l APILocation) DisplayName() string {
	return JoinLocation(l.Name, l.Region, l.Country)
}

// JoinLocation joins non-empty location parts with ", ".
func JoinLocation(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}

// APICondition is the textual weather condition.
type APICondition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

// APIAirQuality is the optional "air_quality" object of current.json.
type APIAirQuality struct {
	CO           float64 `json:"co"`
	NO2          float64 `json:"no2"`
	O3           float64 `json:"o3"`
	SO2          float64 `json:"so2"`
	PM25         float64 `json:"pm2_5"`
	PM10         float64 `json:"pm10"`
	USEPAIndex   int     `json:"us-epa-index"`
	GBDefraIndex int     `json:"gb-defra-index"`
}

// APICurrent is the "current" object of current.json and forecast.json.
type APICurrent struct {
	LastUpdated string         `json:"last_updated"`
	TempC       float64        `json:"temp_c"`
	IsDay       int            `json:"is_day"`
	Condition   APICondition   `json:"condition"`
	WindKph     float64        `json:"wind_kph"`
	WindDir     string         `json:"wind_dir"`
	PressureMb  float64        `json:"pressure_mb"`
	PrecipMm    float64        `json:"precip_mm"`
	Humidity    int            `json:"humidity"`
	Cloud       int            `json:"cloud"`
	FeelsLikeC  float64        `json:"feelslike_c"`
	VisKm       float64        `json:"vis_km"`
	UV          float64        `json:"uv"`
	GustKph     float64        `json:"gust_kph"`
	AirQuality  *APIAirQuality `json:"air_quality,omitempty"`
}

// CurrentResponse is the body of GET /current.json.
type CurrentResponse struct {
	Location APILocation `json:"location"`
	Current  APICurrent  `json:"current"`
}

// APIDay is the "day" object of a forecast day.
type APIDay struct {
	MaxTempC          float64      `json:"maxtemp_c"`
	MinTempC          float64      `json:"mintemp_c"`
	AvgTempC          float64      `json:"avgtemp_c"`
	MaxWindKph        float64      `json:"maxwind_kph"`
	TotalPrecipMm     float64      `json:"totalprecip_mm"`
	AvgHumidity       float64      `json:"avghumidity"`
	DailyChanceOfRain int          `json:"daily_chance_of_rain"`
	Condition         APICondition `json:"condition"`
	UV                float64      `json:"uv"`
}

// APIAstro is the "astro" object shared by forecast.json and astronomy.json.
// moon_illumination has been served both as a number and as a quoted
// number, hence json.Number.
type APIAstro struct {
	Sunrise          string      `json:"sunrise"`
	Sunset           string      `json:"sunset"`
	Moonrise         string      `json:"moonrise"`
	Moonset          string      `json:"moonset"`
	MoonPhase        string      `json:"moon_phase"`
	MoonIllumination json.Number `json:"moon_illumination"`
	IsMoonUp         int         `json:"is_moon_up"`
	IsSunUp          int         `json:"is_sun_up"`
}

// APIForecastDay is one element of forecast.forecastday.
type APIForecastDay struct {
	Date  string   `json:"date"`
	Day   APIDay   `json:"day"`
	Astro APIAstro `json:"astro"`
}

// ForecastResponse is the body of GET /forecast.json.
type ForecastResponse struct {
	Location APILocation `json:"location"`
	Current  APICurrent  `json:"current"`
	Forecast struct {
		ForecastDay []APIForecastDay `json:"forecastday"`
	} `json:"forecast"`
}

// AstronomyResponse is the body of GET /astronomy.json.
type AstronomyResponse struct {
	Location  APILocation `json:"location"`
	Astronomy struct {
		Astro APIAstro `json:"astro"`
	} `json:"astronomy"`
}

// APIErrorResponse is the error envelope WeatherAPI returns on 4xx.
type APIErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
