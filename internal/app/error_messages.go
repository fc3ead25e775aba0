// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the CLI
// and the TUI.
//
// All Msg* constants are human-readable texts shown in place of raw errors.
// Keeping them in one place ensures consistent wording across both
// front-ends.
package app

const (
	// MsgMissingAPIKey is shown when no API key could be resolved at startup.
	MsgMissingAPIKey = "No weather API key is available.\n\n" +
		"To fix this issue:\n" +
		"1. Get a free API key at: https://www.weatherapi.com/\n" +
		"2. Sign up, open the dashboard and copy your API key\n" +
		"3. Set the environment variable:\n" +
		"   export WEATHER_API_KEY=\"<your key>\"\n" +
		"   or pass --api-key <your key>\n" +
		"4. Restart the application"

	// MsgInvalidAPIKey is shown when WeatherAPI rejects the key (401).
	MsgInvalidAPIKey = "The weather API key was rejected. Check WEATHER_API_KEY or --api-key."

	// MsgAPIKeyDisabled is shown when the key is disabled or out of quota (403).
	MsgAPIKeyDisabled = "The weather API key is disabled or has exceeded its monthly quota."

	// MsgRateLimited is shown on 429 responses.
	MsgRateLimited = "Too many requests to the weather service. Please wait a moment and try again."

	// MsgLocationNotFound is shown when no location matches the query.
	MsgLocationNotFound = "Location not found. Please check the spelling and try again."

	// MsgInvalidLocation is shown when the entered location fails validation.
	MsgInvalidLocation = "Please enter a location of at least 2 characters, e.g. \"London\" or \"New York\"."

	// MsgInvalidForecastDays is shown when the requested forecast length is
	// out of range.
	MsgInvalidForecastDays = "Forecast days must be between 1 and 10."

	// MsgInvalidDate is shown when the astronomy date is malformed.
	MsgInvalidDate = "Dates must use the YYYY-MM-DD format."

	// MsgAirQualityUnavailable is shown when the location has no AQI data.
	MsgAirQualityUnavailable = "Air quality data is not available for this location."

	// MsgUpstreamUnavailable is shown on 5xx responses.
	MsgUpstreamUnavailable = "The weather service is temporarily unavailable. Please try again later."

	// MsgNetwork is shown when the weather service cannot be reached.
	MsgNetwork = "Could not reach the weather service. Please check your internet connection."

	// MsgTimeout is shown when a lookup takes longer than the request timeout.
	MsgTimeout = "The weather service took too long to respond. Please try again."

	// MsgUnexpected is the fallback for errors without a dedicated message.
	MsgUnexpected = "Something went wrong. See wait.log for details."

	// MsgNoLocation is shown when a lookup is selected before a location is set.
	MsgNoLocation = "No location set. Choose \"Enter Location\" first."
)
