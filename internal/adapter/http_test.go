// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-weather-term/internal/config"
	"github.com/MKhiriev/go-weather-term/internal/logger"
	"github.com/MKhiriev/go-weather-term/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-key-0123456789"

// fakeWeatherAPI is a minimal WeatherAPI stand-in. Locations in notFound
// answer with code 1006; every request must carry testAPIKey.
type fakeWeatherAPI struct {
	mu       sync.Mutex
	requests []*http.Request
	status   int
	body     string
}

func (f *fakeWeatherAPI) router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			f.mu.Lock()
			f.requests = append(f.requests, req)
			f.mu.Unlock()

			w.Header().Set("Content-Type", "application/json")
			if req.URL.Query().Get("key") != testAPIKey {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":{"code":2006,"message":"API key is invalid."}}`))
				return
			}
			if f.status != 0 {
				w.WriteHeader(f.status)
				_, _ = w.Write([]byte(f.body))
				return
			}
			if req.URL.Query().Get("q") == "Atlantis" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":{"code":1006,"message":"No matching location found."}}`))
				return
			}
			next.ServeHTTP(w, req)
		})
	})

	r.Get("/v1/current.json", func(w http.ResponseWriter, req *http.Request) {
		aqi := ""
		if req.URL.Query().Get("aqi") == "yes" {
			aqi = `,"air_quality":{"co":230.3,"no2":13.5,"o3":54.2,"so2":2.1,"pm2_5":8.4,"pm10":11.9,"us-epa-index":1,"gb-defra-index":1}`
		}
		_, _ = w.Write([]byte(`{"location":{"name":"London","region":"City of London, Greater London","country":"United Kingdom","lat":51.52,"lon":-0.11,"tz_id":"Europe/London","localtime":"2026-03-21 12:00"},` +
			`"current":{"last_updated":"2026-03-21 11:45","temp_c":11.0,"is_day":1,"condition":{"text":"Partly cloudy","code":1003},"wind_kph":15.1,"wind_dir":"WSW","pressure_mb":1012,"precip_mm":0.1,"humidity":71,"cloud":50,"feelslike_c":9.4,"vis_km":10,"uv":3,"gust_kph":22.3` + aqi + `}}`))
	})

	r.Get("/v1/forecast.json", func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`{"location":{"name":"Paris","country":"France"},"current":{"temp_c":14},` +
			`"forecast":{"forecastday":[` +
			`{"date":"2026-03-21","day":{"maxtemp_c":16.2,"mintemp_c":7.1,"condition":{"text":"Sunny"},"daily_chance_of_rain":0},"astro":{"sunrise":"06:45 AM","sunset":"06:58 PM","moon_illumination":"45"}},` +
			`{"date":"2026-03-22","day":{"maxtemp_c":12.0,"mintemp_c":6.3,"condition":{"text":"Light rain"},"daily_chance_of_rain":80},"astro":{"sunrise":"06:43 AM","sunset":"07:00 PM","moon_illumination":52}}` +
			`]}}`))
	})

	r.Get("/v1/astronomy.json", func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`{"location":{"name":"Oslo","country":"Norway"},"astronomy":{"astro":{"sunrise":"06:12 AM","sunset":"06:31 PM","moonrise":"09:14 AM","moonset":"No moonset","moon_phase":"Waxing Crescent","moon_illumination":23,"is_moon_up":1,"is_sun_up":0}}}`))
	})

	r.Get("/v1/search.json", func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Query().Get("q") == "zzzz" {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		_, _ = w.Write([]byte(`[{"id":2801268,"name":"London","region":"City of London, Greater London","country":"United Kingdom","lat":51.52,"lon":-0.11,"url":"london-city-of-london-greater-london-united-kingdom"},` +
			`{"id":315398,"name":"London","region":"Ontario","country":"Canada","lat":42.98,"lon":-81.25,"url":"london-ontario-canada"}]`))
	})

	return r
}

func (f *fakeWeatherAPI) lastRequest(t *testing.T) *http.Request {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests)
	return f.requests[len(f.requests)-1]
}

func newTestAdapter(t *testing.T, key string) (WeatherAdapter, *fakeWeatherAPI) {
	t.Helper()
	fake := &fakeWeatherAPI{}
	srv := httptest.NewServer(fake.router())
	t.Cleanup(srv.Close)

	a, err := NewWeatherAPIAdapter(config.ClientWeather{
		BaseURL:        srv.URL + "/v1",
		RequestTimeout: 2 * time.Second,
		RetryCount:     0,
	}, key, logger.Nop())
	require.NoError(t, err)
	return a, fake
}

func TestNewWeatherAPIAdapter_RequiresKey(t *testing.T) {
	_, err := NewWeatherAPIAdapter(config.ClientWeather{BaseURL: "http://localhost"}, "", logger.Nop())
	require.ErrorIs(t, err, ErrInvalidAPIKey)
}

func TestWeatherAPIAdapter_Current(t *testing.T) {
	a, fake := newTestAdapter(t, testAPIKey)
	ctx := context.Background()

	resp, err := a.Current(ctx, "London", false)
	require.NoError(t, err)
	assert.Equal(t, "London", resp.Location.Name)
	assert.Equal(t, "London, City of London, Greater London, United Kingdom", resp.Location.DisplayName())
	assert.InDelta(t, 11.0, resp.Current.TempC, 0.001)
	assert.Equal(t, "Partly cloudy", resp.Current.Condition.Text)
	assert.Nil(t, resp.Current.AirQuality)

	req := fake.lastRequest(t)
	assert.Equal(t, "no", req.URL.Query().Get("aqi"))
	assert.Equal(t, "London", req.URL.Query().Get("q"))
	assert.NotEmpty(t, req.Header.Get(requestIDHeader))
}

func TestWeatherAPIAdapter_CurrentWithAirQuality(t *testing.T) {
	a, fake := newTestAdapter(t, testAPIKey)

	resp, err := a.Current(context.Background(), "London", true)
	require.NoError(t, err)
	require.NotNil(t, resp.Current.AirQuality)
	assert.InDelta(t, 8.4, resp.Current.AirQuality.PM25, 0.001)
	assert.Equal(t, 1, resp.Current.AirQuality.USEPAIndex)
	assert.Equal(t, "yes", fake.lastRequest(t).URL.Query().Get("aqi"))
}

func TestWeatherAPIAdapter_Forecast(t *testing.T) {
	a, fake := newTestAdapter(t, testAPIKey)

	resp, err := a.Forecast(context.Background(), "Paris", 2)
	require.NoError(t, err)
	require.Len(t, resp.Forecast.ForecastDay, 2)
	assert.Equal(t, "2026-03-21", resp.Forecast.ForecastDay[0].Date)
	assert.Equal(t, "45", resp.Forecast.ForecastDay[0].Astro.MoonIllumination.String())
	assert.Equal(t, "52", resp.Forecast.ForecastDay[1].Astro.MoonIllumination.String())

	q := fake.lastRequest(t).URL.Query()
	assert.Equal(t, "2", q.Get("days"))
	assert.Equal(t, "no", q.Get("alerts"))
	assert.Equal(t, "no", q.Get("aqi"))
}

func TestWeatherAPIAdapter_Astronomy(t *testing.T) {
	a, fake := newTestAdapter(t, testAPIKey)

	resp, err := a.Astronomy(context.Background(), "Oslo", "2026-03-21")
	require.NoError(t, err)
	assert.Equal(t, "Waxing Crescent", resp.Astronomy.Astro.MoonPhase)
	assert.Equal(t, 1, resp.Astronomy.Astro.IsMoonUp)
	assert.Equal(t, "2026-03-21", fake.lastRequest(t).URL.Query().Get("dt"))
}

func TestWeatherAPIAdapter_Search(t *testing.T) {
	a, _ := newTestAdapter(t, testAPIKey)

	matches, err := a.Search(context.Background(), "London")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "London, Ontario, Canada", matches[1].DisplayName())

	empty, err := a.Search(context.Background(), "zzzz")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestWeatherAPIAdapter_PropagatesRequestID(t *testing.T) {
	a, fake := newTestAdapter(t, testAPIKey)
	ctx := utils.WithRequestID(context.Background(), "req-42")

	_, err := a.Search(ctx, "London")
	require.NoError(t, err)
	assert.Equal(t, "req-42", fake.lastRequest(t).Header.Get(requestIDHeader))
}

func TestWeatherAPIAdapter_LocationNotFound(t *testing.T) {
	a, _ := newTestAdapter(t, testAPIKey)

	_, err := a.Current(context.Background(), "Atlantis", false)
	require.ErrorIs(t, err, ErrLocationNotFound)
}

func TestWeatherAPIAdapter_InvalidKeyNotLeaked(t *testing.T) {
	wrongKey := "wrong-key-0123456789"
	a, _ := newTestAdapter(t, wrongKey)

	_, err := a.Forecast(context.Background(), "Paris", 3)
	require.ErrorIs(t, err, ErrInvalidAPIKey)
	assert.NotContains(t, err.Error(), wrongKey)
}

func TestWeatherAPIAdapter_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrInvalidAPIKey},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrAPIKeyDisabled},
		{name: "quota code", status: http.StatusForbidden, body: `{"error":{"code":2007,"message":"quota exceeded"}}`, wantErr: ErrRateLimited},
		{name: "disabled code", status: http.StatusForbidden, body: `{"error":{"code":2008,"message":"disabled"}}`, wantErr: ErrAPIKeyDisabled},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrLocationNotFound},
		{name: "rate limited", status: http.StatusTooManyRequests, wantErr: ErrRateLimited},
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":{"code":1003,"message":"Parameter q is missing."}}`, wantErr: ErrBadRequest},
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrUpstreamUnavailable},
		{name: "bad gateway", status: http.StatusBadGateway, body: "<html>", wantErr: ErrUpstreamUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, fake := newTestAdapter(t, testAPIKey)
			fake.status = tt.status
			fake.body = tt.body

			_, err := a.Current(context.Background(), "London", false)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWeatherAPIAdapter_DecodeError(t *testing.T) {
	a, fake := newTestAdapter(t, testAPIKey)
	fake.status = http.StatusOK
	fake.body = `{"location":`

	_, err := a.Current(context.Background(), "London", false)
	require.ErrorIs(t, err, ErrDecodeResponse)
}

func TestWeatherAPIAdapter_NetworkErrorHidesKey(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	a, err := NewWeatherAPIAdapter(config.ClientWeather{
		BaseURL:        baseURL,
		RequestTimeout: time.Second,
	}, testAPIKey, logger.Nop())
	require.NoError(t, err)

	_, err = a.Current(context.Background(), "London", false)
	require.ErrorIs(t, err, ErrNetwork)
	assert.NotContains(t, err.Error(), testAPIKey)
}

func TestWeatherAPIAdapter_ContextCanceled(t *testing.T) {
	a, _ := newTestAdapter(t, testAPIKey)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Current(ctx, "London", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.NotContains(t, err.Error(), testAPIKey)
}

func TestParseAPIError(t *testing.T) {
	body, err := json.Marshal(map[string]any{"error": map[string]any{"code": 1006, "message": " No matching location found. "}})
	require.NoError(t, err)

	code, msg := parseAPIError(body)
	assert.Equal(t, 1006, code)
	assert.Equal(t, "No matching location found.", msg)

	code, msg = parseAPIError([]byte("not json"))
	assert.Zero(t, code)
	assert.Empty(t, msg)
}
