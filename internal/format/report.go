// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package format

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-weather-term/models"
)

// CurrentReport renders current conditions.
func CurrentReport(w models.CurrentWeather, p models.UnitPreferences) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Location: %s\n", w.Location)
	if w.LocalTime != "" {
		fmt.Fprintf(&b, "Local time: %s\n", w.LocalTime)
	}
	b.WriteString("\nCurrent Weather:\n")
	fmt.Fprintf(&b, "Temperature: %s\n", Temperature(w.TemperatureC, p.Temperature))
	fmt.Fprintf(&b, "Condition: %s\n", w.Condition)
	fmt.Fprintf(&b, "Feels Like: %s\n", Temperature(w.FeelsLikeC, p.Temperature))
	fmt.Fprintf(&b, "Humidity: %d%%\n", w.Humidity)
	fmt.Fprintf(&b, "Wind: %s %s\n", WindSpeed(w.WindKph, p.WindSpeed), w.WindDir)
	fmt.Fprintf(&b, "Pressure: %s\n", Pressure(w.PressureMb, p.Pressure))
	fmt.Fprintf(&b, "Visibility: %s\n", Visibility(w.VisibilityKm, p.Visibility))
	fmt.Fprintf(&b, "Precipitation: %s\n", Precipitation(w.PrecipMm, p.Precipitation))
	fmt.Fprintf(&b, "UV Index: %.1f\n", w.UV)
	if w.LastUpdated != "" {
		fmt.Fprintf(&b, "\nLast updated: %s\n", w.LastUpdated)
	}

	return b.String()
}

// ForecastReport renders one block per forecast day.
func ForecastReport(f models.Forecast, p models.UnitPreferences) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Location: %s\n\n", f.Location)
	fmt.Fprintf(&b, "%d-Day Weather Forecast:\n", len(f.Days))

	for i, d := range f.Days {
		fmt.Fprintf(&b, "\nDay %d - %s:\n", i+1, d.Date)
		fmt.Fprintf(&b, "  Condition: %s\n", d.Condition)
		fmt.Fprintf(&b, "  Max Temperature: %s\n", Temperature(d.MaxTempC, p.Temperature))
		fmt.Fprintf(&b, "  Min Temperature: %s\n", Temperature(d.MinTempC, p.Temperature))
		fmt.Fprintf(&b, "  Humidity: %d%%\n", roundInt(d.AvgHumidity))
		fmt.Fprintf(&b, "  Max Wind: %s\n", WindSpeed(d.MaxWindKph, p.WindSpeed))
		fmt.Fprintf(&b, "  Precipitation: %s (%d%% chance of rain)\n", Precipitation(d.TotalPrecipMm, p.Precipitation), d.ChanceOfRain)
		if d.Sunrise != "" || d.Sunset != "" {
			fmt.Fprintf(&b, "  Sunrise / Sunset: %s / %s\n", d.Sunrise, d.Sunset)
		}
	}

	return b.String()
}

// AirQualityReport renders pollutant concentrations and both indexes.
func AirQualityReport(aq models.AirQuality) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Location: %s\n\n", aq.Location)
	b.WriteString("Air Quality:\n")
	fmt.Fprintf(&b, "US-EPA Index: %d (%s)\n", aq.USEPAIndex, USEPALabel(aq.USEPAIndex))
	fmt.Fprintf(&b, "UK DEFRA Index: %d (%s)\n\n", aq.GBDefraIndex, DefraLabel(aq.GBDefraIndex))
	b.WriteString("Pollutants (μg/m³):\n")
	fmt.Fprintf(&b, "  CO: %.2f\n", aq.CO)
	fmt.Fprintf(&b, "  O3: %.2f\n", aq.O3)
	fmt.Fprintf(&b, "  NO2: %.2f\n", aq.NO2)
	fmt.Fprintf(&b, "  SO2: %.2f\n", aq.SO2)
	fmt.Fprintf(&b, "  PM2.5: %.2f\n", aq.PM25)
	fmt.Fprintf(&b, "  PM10: %.2f\n", aq.PM10)

	return b.String()
}

// AstronomyReport renders sun and moon times.
func AstronomyReport(a models.Astronomy) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Location: %s\n", a.Location)
	fmt.Fprintf(&b, "Date: %s\n\n", a.Date)
	b.WriteString("Sun:\n")
	fmt.Fprintf(&b, "  Sunrise: %s\n", a.Sunrise)
	fmt.Fprintf(&b, "  Sunset: %s\n", a.Sunset)
	fmt.Fprintf(&b, "  Currently up: %s\n", yesNo(a.IsSunUp))
	b.WriteString("\nMoon:\n")
	fmt.Fprintf(&b, "  Moonrise: %s\n", a.Moonrise)
	fmt.Fprintf(&b, "  Moonset: %s\n", a.Moonset)
	fmt.Fprintf(&b, "  Phase: %s\n", a.MoonPhase)
	fmt.Fprintf(&b, "  Illumination: %d%%\n", a.MoonIllumination)
	fmt.Fprintf(&b, "  Currently up: %s\n", yesNo(a.IsMoonUp))

	return b.String()
}

// SearchReport lists matching locations, one per line.
func SearchReport(term string, matches []models.LocationMatch) string {
	if len(matches) == 0 {
		return fmt.Sprintf("No locations found for %q.\n", term)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Locations matching %q:\n\n", term)
	for i, m := range matches {
		fmt.Fprintf(&b, "%2d. %s (%.2f, %.2f)\n", i+1, m.DisplayName(), m.Lat, m.Lon)
	}

	return b.String()
}

// HistoryReport lists recently looked up locations.
func HistoryReport(entries []models.LocationHistoryEntry) string {
	if len(entries) == 0 {
		return "No locations looked up yet.\n"
	}

	var b strings.Builder
	b.WriteString("Recent locations:\n\n")
	for i, e := range entries {
		fmt.Fprintf(&b, "%2d. %s (%s, %s)\n", i+1, e.Location, lookupsLabel(e.Lookups), e.LookedUpAt.Local().Format("2006-01-02 15:04"))
	}

	return b.String()
}

// PreferencesReport renders the active units.
func PreferencesReport(p models.UnitPreferences) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Preset: %s\n", p.Preset)
	fmt.Fprintf(&b, "Temperature: %s\n", p.Temperature)
	fmt.Fprintf(&b, "Wind speed: %s\n", p.WindSpeed)
	fmt.Fprintf(&b, "Pressure: %s\n", p.Pressure)
	fmt.Fprintf(&b, "Visibility: %s\n", p.Visibility)
	fmt.Fprintf(&b, "Precipitation: %s\n", p.Precipitation)
	fmt.Fprintf(&b, "Forecast days: %d\n", p.ForecastDays)
	if p.DefaultLocation != "" {
		fmt.Fprintf(&b, "Default location: %s\n", p.DefaultLocation)
	}

	return b.String()
}

func lookupsLabel(n int) string {
	if n == 1 {
		return "1 lookup"
	}
	return fmt.Sprintf("%d lookups", n)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
