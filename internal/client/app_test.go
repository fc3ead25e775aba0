// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-weather-term/internal/config"
	"github.com/MKhiriev/go-weather-term/internal/embedded"
	"github.com/MKhiriev/go-weather-term/internal/logger"
	"github.com/MKhiriev/go-weather-term/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "client-test-key-0123"

func fakeWeatherAPI(t *testing.T) string {
	t.Helper()

	r := chi.NewRouter()
	r.Get("/v1/current.json", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if req.URL.Query().Get("key") != testAPIKey {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"code":2006,"message":"API key is invalid."}}`))
			return
		}
		_, _ = w.Write([]byte(`{"location":{"name":"London","region":"City of London, Greater London","country":"United Kingdom","localtime":"2026-03-21 12:00"},` +
			`"current":{"last_updated":"2026-03-21 11:45","temp_c":11.0,"is_day":1,"condition":{"text":"Partly cloudy"},"wind_kph":15.1,"wind_dir":"WSW","pressure_mb":1012,"precip_mm":0.1,"humidity":71,"feelslike_c":9.4,"vis_km":10,"uv":3}}`))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv.URL + "/v1"
}

func testConfig(baseURL, apiKey string, args ...string) *config.ClientConfig {
	return &config.ClientConfig{
		Weather: config.ClientWeather{
			APIKey:         apiKey,
			BaseURL:        baseURL,
			RequestTimeout: 2 * time.Second,
		},
		Storage:     config.ClientStorage{DB: config.ClientDB{DSN: ":memory:"}},
		Preferences: config.ClientPreferences{Units: models.PresetMetric, ForecastDays: 3},
		Workers:     config.ClientWorkers{HistoryLimit: 20},
		Args:        args,
	}
}

func TestNewApp_LookupAndHistory(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(fakeWeatherAPI(t), testAPIKey, "current", "London")

	a, err := NewApp(ctx, cfg, BuildInfo{Version: "1.0.0", Date: "2026-03-01", Commit: "abc"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	out := &bytes.Buffer{}
	a.out = out

	require.NoError(t, a.Run(ctx))
	assert.Contains(t, out.String(), "Location: London, City of London, Greater London, United Kingdom")
	assert.Contains(t, out.String(), "Condition: Partly cloudy")

	out.Reset()
	a.args = []string{"history"}
	require.NoError(t, a.Run(ctx))
	assert.Contains(t, out.String(), " 1. London (1 lookup")

	out.Reset()
	a.args = []string{"version"}
	require.NoError(t, a.Run(ctx))
	assert.Contains(t, out.String(), "wait version 1.0.0")
	assert.Contains(t, out.String(), "API key source: override")
}

func TestNewApp_MissingKey(t *testing.T) {
	if embedded.BuildMetadata.HasEmbeddedKey {
		t.Skip("binary was built with an embedded key")
	}
	ctx := context.Background()
	cfg := testConfig("http://127.0.0.1:0/v1", "", "current", "London")

	a, err := NewApp(ctx, cfg, BuildInfo{}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	out := &bytes.Buffer{}
	a.out = out

	err = a.Run(ctx)
	require.Error(t, err)
	assert.Contains(t, ErrorMessage(err), "WEATHER_API_KEY")
	assert.Empty(t, out.String())

	a.args = []string{"version"}
	require.NoError(t, a.Run(ctx))
	assert.Contains(t, out.String(), "wait version "+embedded.BuildMetadata.Version)
	assert.Contains(t, out.String(), "API key source: none")
}

func TestAppVersion(t *testing.T) {
	assert.Equal(t, "2.0.0", appVersion(config.ClientApp{Version: "2.0.0"}, BuildInfo{Version: "1.0.0"}))
	assert.Equal(t, "1.0.0", appVersion(config.ClientApp{}, BuildInfo{Version: "1.0.0"}))
	assert.Equal(t, embedded.BuildMetadata.Version, appVersion(config.ClientApp{}, BuildInfo{}))
}
