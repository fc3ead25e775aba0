// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package format converts metric measurements into the units selected in
// [models.UnitPreferences] and renders plain-text weather reports shared by
// the CLI and the TUI.
package format

import (
	"fmt"
	"math"

	"github.com/MKhiriev/go-weather-term/models"
)

const (
	kmToMiles  = 0.621371
	mbToInHg   = 0.02953
	mmToInches = 0.0393701
)

// CelsiusToFahrenheit converts a temperature.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// KphToMph converts a speed.
func KphToMph(kph float64) float64 {
	return kph * kmToMiles
}

// MbToInHg converts a pressure.
func MbToInHg(mb float64) float64 {
	return mb * mbToInHg
}

// KmToMiles converts a distance.
func KmToMiles(km float64) float64 {
	return km * kmToMiles
}

// MmToInches converts a precipitation amount.
func MmToInches(mm float64) float64 {
	return mm * mmToInches
}

// Temperature renders c rounded to a whole degree, e.g. "18°C" or "64°F".
func Temperature(c float64, unit string) string {
	if unit == models.Fahrenheit {
		return fmt.Sprintf("%d°F", roundInt(CelsiusToFahrenheit(c)))
	}
	return fmt.Sprintf("%d°C", roundInt(c))
}

// WindSpeed renders a speed with one decimal.
func WindSpeed(kph float64, unit string) string {
	if unit == models.Mph {
		return fmt.Sprintf("%.1f mph", KphToMph(kph))
	}
	return fmt.Sprintf("%.1f km/h", kph)
}

// Pressure renders mb as whole millibars or inHg with two decimals.
func Pressure(mb float64, unit string) string {
	if unit == models.InchHg {
		return fmt.Sprintf("%.2f inHg", MbToInHg(mb))
	}
	return fmt.Sprintf("%d mb", roundInt(mb))
}

// Visibility renders a distance with one decimal.
func Visibility(km float64, unit string) string {
	if unit == models.Miles {
		return fmt.Sprintf("%.1f miles", KmToMiles(km))
	}
	return fmt.Sprintf("%.1f km", km)
}

// Precipitation renders mm with one decimal or inches with two.
func Precipitation(mm float64, unit string) string {
	if unit == models.Inch {
		return fmt.Sprintf("%.2f in", MmToInches(mm))
	}
	return fmt.Sprintf("%.1f mm", mm)
}

func roundInt(v float64) int {
	r := math.Round(v)
	if r == 0 {
		// avoids "-0"
		return 0
	}
	return int(r)
}
