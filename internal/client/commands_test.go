// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-weather-term/internal/app"
	"github.com/MKhiriev/go-weather-term/internal/credentials"
	"github.com/MKhiriev/go-weather-term/internal/logger"
	"github.com/MKhiriev/go-weather-term/internal/mock"
	"github.com/MKhiriev/go-weather-term/internal/service"
	"github.com/MKhiriev/go-weather-term/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	weather *mock.MockWeatherService
	prefs   *mock.MockPreferencesService
	history *mock.MockHistoryService
	info    *mock.MockAppInfoService
}

func newTestApp(t *testing.T, keyErr error) (*App, testMocks, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		weather: mock.NewMockWeatherService(ctrl),
		prefs:   mock.NewMockPreferencesService(ctrl),
		history: mock.NewMockHistoryService(ctrl),
		info:    mock.NewMockAppInfoService(ctrl),
	}
	out := &bytes.Buffer{}

	return &App{
		keyErr: keyErr,
		services: &service.Services{
			WeatherService:     m.weather,
			PreferencesService: m.prefs,
			HistoryService:     m.history,
			AppInfoService:     m.info,
		},
		out:    out,
		logger: logger.Nop(),
	}, m, out
}

func metricWithDefault(location string) models.UnitPreferences {
	p := models.MetricPreferences()
	p.DefaultLocation = location
	return p
}

func TestRunCommand_Current(t *testing.T) {
	a, m, out := newTestApp(t, nil)

	m.prefs.EXPECT().Get(gomock.Any()).Return(models.MetricPreferences(), nil)
	m.weather.EXPECT().Current(gomock.Any(), "New York").Return(models.CurrentWeather{
		Location:     "New York, New York, United States of America",
		Condition:    "Clear",
		TemperatureC: 21,
	}, nil)

	err := a.runCommand(context.Background(), []string{"now", "New", "York"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Location: New York, New York, United States of America")
	assert.Contains(t, out.String(), "Temperature: 21°C")
}

func TestRunCommand_DefaultLocation(t *testing.T) {
	a, m, out := newTestApp(t, nil)

	m.prefs.EXPECT().Get(gomock.Any()).Return(metricWithDefault("Berlin"), nil)
	m.weather.EXPECT().AirQuality(gomock.Any(), "Berlin").Return(models.AirQuality{Location: "Berlin, Germany", USEPAIndex: 2}, nil)

	require.NoError(t, a.runCommand(context.Background(), []string{"aqi"}))
	assert.Contains(t, out.String(), "US-EPA Index: 2 (Moderate)")
}

func TestRunCommand_NoLocation(t *testing.T) {
	a, m, out := newTestApp(t, nil)

	m.prefs.EXPECT().Get(gomock.Any()).Return(models.MetricPreferences(), nil)

	err := a.runCommand(context.Background(), []string{"current"})
	require.ErrorIs(t, err, ErrNoLocation)
	assert.Equal(t, app.MsgNoLocation, ErrorMessage(err))
	assert.Empty(t, out.String())
}

func TestRunCommand_Forecast(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantLocation string
		wantDays     int
	}{
		{name: "explicit days", args: []string{"forecast", "Rio", "de", "Janeiro", "7"}, wantLocation: "Rio de Janeiro", wantDays: 7},
		{name: "preferred days", args: []string{"fc", "Paris"}, wantLocation: "Paris", wantDays: 4},
		{name: "postcode is a location", args: []string{"fc", "10001"}, wantLocation: "10001", wantDays: 4},
		{name: "zero days is passed on", args: []string{"fc", "Paris", "0"}, wantLocation: "Paris", wantDays: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, m, out := newTestApp(t, nil)

			prefs := models.MetricPreferences()
			prefs.ForecastDays = 4
			m.prefs.EXPECT().Get(gomock.Any()).Return(prefs, nil)
			m.weather.EXPECT().Forecast(gomock.Any(), tt.wantLocation, tt.wantDays).Return(models.Forecast{
				Location: tt.wantLocation,
				Days:     []models.ForecastDay{{Date: "2026-06-01", Condition: "Sunny"}},
			}, nil)

			require.NoError(t, a.runCommand(context.Background(), tt.args))
			assert.Contains(t, out.String(), "1-Day Weather Forecast:")
		})
	}
}

func TestRunCommand_Astronomy(t *testing.T) {
	a, m, out := newTestApp(t, nil)

	m.prefs.EXPECT().Get(gomock.Any()).Return(models.MetricPreferences(), nil)
	m.weather.EXPECT().Astronomy(gomock.Any(), "Oslo", "2026-12-21").Return(models.Astronomy{
		Location:  "Oslo, Norway",
		Date:      "2026-12-21",
		Sunrise:   "09:18 AM",
		MoonPhase: "Full Moon",
	}, nil)

	require.NoError(t, a.runCommand(context.Background(), []string{"ASTRO", "Oslo", "2026-12-21"}))
	assert.Contains(t, out.String(), "Sunrise: 09:18 AM")
	assert.Contains(t, out.String(), "Phase: Full Moon")
}

func TestRunCommand_Overview(t *testing.T) {
	a, m, out := newTestApp(t, nil)

	m.prefs.EXPECT().Get(gomock.Any()).Return(models.ImperialPreferences(), nil)
	m.weather.EXPECT().Overview(gomock.Any(), "Rome", 2).Return(models.Overview{
		Current:   models.CurrentWeather{Location: "Rome, Italy", TemperatureC: 30},
		Forecast:  models.Forecast{Location: "Rome, Italy", Days: []models.ForecastDay{{Date: "2026-06-01"}, {Date: "2026-06-02"}}},
		Astronomy: models.Astronomy{Location: "Rome, Italy", Sunset: "08:44 PM"},
	}, nil)

	require.NoError(t, a.runCommand(context.Background(), []string{"all", "Rome", "2"}))
	assert.Contains(t, out.String(), "Temperature: 86°F")
	assert.Contains(t, out.String(), "2-Day Weather Forecast:")
	assert.Contains(t, out.String(), "Sunset: 08:44 PM")
}

func TestRunCommand_Search(t *testing.T) {
	a, m, out := newTestApp(t, nil)

	m.weather.EXPECT().Search(gomock.Any(), "Lon").Return([]models.LocationMatch{
		{Name: "London", Region: "City of London, Greater London", Country: "United Kingdom", Lat: 51.52, Lon: -0.11},
	}, nil)

	require.NoError(t, a.runCommand(context.Background(), []string{"find", "Lon"}))
	assert.Contains(t, out.String(), "Locations matching \"Lon\"")
	assert.Contains(t, out.String(), "London")
}

func TestRunCommand_SearchWithoutTerm(t *testing.T) {
	a, _, _ := newTestApp(t, nil)

	err := a.runCommand(context.Background(), []string{"search"})
	require.ErrorIs(t, err, ErrMissingArgument)
	assert.Contains(t, ErrorMessage(err), "Usage: wait")
}

func TestRunCommand_MissingKey(t *testing.T) {
	keyErr := &credentials.MissingCredentialError{Reason: "no key provided and none embedded in this build"}

	for _, cmd := range []string{"current", "forecast", "air", "astro", "overview", "search"} {
		t.Run(cmd, func(t *testing.T) {
			a, _, out := newTestApp(t, keyErr)

			err := a.runCommand(context.Background(), []string{cmd, "London"})
			require.ErrorIs(t, err, credentials.ErrMissingCredential)
			assert.Equal(t, app.MsgMissingAPIKey, ErrorMessage(err))
			assert.Empty(t, out.String())
		})
	}
}

func TestRunCommand_LookupError(t *testing.T) {
	a, m, _ := newTestApp(t, nil)

	m.prefs.EXPECT().Get(gomock.Any()).Return(models.MetricPreferences(), nil)
	m.weather.EXPECT().AirQuality(gomock.Any(), "Nowhere").Return(models.AirQuality{}, service.ErrAirQualityUnavailable)

	err := a.runCommand(context.Background(), []string{"air", "Nowhere"})
	assert.Equal(t, app.MsgAirQualityUnavailable, ErrorMessage(err))
}

func TestRunCommand_History(t *testing.T) {
	a, m, out := newTestApp(t, &credentials.MissingCredentialError{})

	m.history.EXPECT().Recent(gomock.Any(), 0).Return([]models.LocationHistoryEntry{
		{Location: "Tokyo", Lookups: 3},
	}, nil)

	require.NoError(t, a.runCommand(context.Background(), []string{"history"}))
	assert.Contains(t, out.String(), "Tokyo (3 lookups")
}

func TestRunCommand_Units(t *testing.T) {
	a, m, out := newTestApp(t, nil)

	m.prefs.EXPECT().SetPreset(gomock.Any(), models.PresetImperial).Return(models.ImperialPreferences(), nil)
	require.NoError(t, a.runCommand(context.Background(), []string{"units", "Imperial"}))
	assert.Contains(t, out.String(), "Preset: imperial")

	out.Reset()
	m.prefs.EXPECT().Get(gomock.Any()).Return(models.MetricPreferences(), nil)
	require.NoError(t, a.runCommand(context.Background(), []string{"units"}))
	assert.Contains(t, out.String(), "Temperature: celsius")

	m.prefs.EXPECT().SetPreset(gomock.Any(), "kelvin").Return(models.UnitPreferences{}, service.ErrUnknownPreset)
	err := a.runCommand(context.Background(), []string{"units", "kelvin"})
	assert.ErrorIs(t, err, service.ErrUnknownPreset)
}

func TestRunCommand_Version(t *testing.T) {
	a, m, out := newTestApp(t, errors.New("no key"))

	m.info.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("1.4.0", "", "9f8e7d",
		models.BuildMetadata{Version: "1.4.0"}, models.KeySourceOverride))

	require.NoError(t, a.runCommand(context.Background(), []string{"version"}))
	assert.Contains(t, out.String(), "wait version 1.4.0")
	assert.Contains(t, out.String(), "Build date: N/A")
	assert.Contains(t, out.String(), "Build commit: 9f8e7d")
	assert.Contains(t, out.String(), "Embedded API key: false")
	assert.Contains(t, out.String(), "API key source: none")
}

func TestRunCommand_Unknown(t *testing.T) {
	a, _, out := newTestApp(t, nil)

	err := a.runCommand(context.Background(), []string{"radar"})
	require.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, ErrorMessage(err), `unknown command: "radar"`)

	require.NoError(t, a.runCommand(context.Background(), []string{"help"}))
	assert.Contains(t, out.String(), "Commands:")
}

func TestTrailingDate(t *testing.T) {
	tests := []struct {
		args     []string
		wantArgs []string
		wantDate string
	}{
		{args: []string{"Oslo"}, wantArgs: []string{"Oslo"}},
		{args: []string{"New", "York", "2026-01-31"}, wantArgs: []string{"New", "York"}, wantDate: "2026-01-31"},
		{args: []string{"Oslo", "2026-13-45"}, wantArgs: []string{"Oslo"}, wantDate: "2026-13-45"},
		{args: []string{"Oslo", "tomorrow"}, wantArgs: []string{"Oslo", "tomorrow"}},
		{args: []string{"2026-01-31"}, wantArgs: []string{"2026-01-31"}},
	}

	for _, tt := range tests {
		args, date := trailingDate(tt.args)
		assert.Equal(t, tt.wantArgs, args)
		assert.Equal(t, tt.wantDate, date)
	}
}
