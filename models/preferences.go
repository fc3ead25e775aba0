// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Unit names used by [UnitPreferences].
const (
	Celsius    = "celsius"
	Fahrenheit = "fahrenheit"
	Kph        = "kph"
	Mph        = "mph"
	Millibar   = "mb"
	InchHg     = "in"
	Kilometres = "km"
	Miles      = "miles"
	Millimetre = "mm"
	Inch       = "in"
)

// Unit presets.
const (
	PresetMetric   = "metric"
	PresetImperial = "imperial"
	PresetCustom   = "custom"
)

// UnitPreferences selects the display unit of every measurement plus a few
// lookup defaults. Preset is derived from the individual units and is kept
// in sync by [UnitPreferences.Normalize].
type UnitPreferences struct {
	Preset          string `json:"preset"`
	Temperature     string `json:"temperature"`
	WindSpeed       string `json:"wind_speed"`
	Pressure        string `json:"pressure"`
	Visibility      string `json:"visibility"`
	Precipitation   string `json:"precipitation"`
	DefaultLocation string `json:"default_location"`
	ForecastDays    int    `json:"forecast_days"`
}

// MetricPreferences returns the metric preset with 3 forecast days.
func MetricPreferences() UnitPreferences {
	return UnitPreferences{
		Preset:        PresetMetric,
		Temperature:   Celsius,
		WindSpeed:     Kph,
		Pressure:      Millibar,
		Visibility:    Kilometres,
		Precipitation: Millimetre,
		ForecastDays:  3,
	}
}

// ImperialPreferences returns the imperial preset with 3 forecast days.
func ImperialPreferences() UnitPreferences {
	return UnitPreferences{
		Preset:        PresetImperial,
		Temperature:   Fahrenheit,
		WindSpeed:     Mph,
		Pressure:      InchHg,
		Visibility:    Miles,
		Precipitation: Inch,
		ForecastDays:  3,
	}
}

// Normalize recomputes Preset from the individual unit fields.
func (p UnitPreferences) Normalize() UnitPreferences {
	switch {
	case p.Temperature == Celsius && p.WindSpeed == Kph && p.Pressure == Millibar &&
		p.Visibility == Kilometres && p.Precipitation == Millimetre:
		p.Preset = PresetMetric
	case p.Temperature == Fahrenheit && p.WindSpeed == Mph && p.Pressure == InchHg &&
		p.Visibility == Miles && p.Precipitation == Inch:
		p.Preset = PresetImperial
	default:
		p.Preset = PresetCustom
	}
	return p
}
