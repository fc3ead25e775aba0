// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"math"

	"github.com/MKhiriev/go-weather-term/models"
)

func toCurrentWeather(resp models.CurrentResponse) models.CurrentWeather {
	c := resp.Current
	return models.CurrentWeather{
		Location:     resp.Location.DisplayName(),
		LocalTime:    resp.Location.LocalTime,
		LastUpdated:  c.LastUpdated,
		Condition:    c.Condition.Text,
		IsDay:        c.IsDay == 1,
		TemperatureC: c.TempC,
		FeelsLikeC:   c.FeelsLikeC,
		Humidity:     c.Humidity,
		Cloud:        c.Cloud,
		WindKph:      c.WindKph,
		GustKph:      c.GustKph,
		WindDir:      c.WindDir,
		PressureMb:   c.PressureMb,
		VisibilityKm: c.VisKm,
		PrecipMm:     c.PrecipMm,
		UV:           c.UV,
	}
}

func toForecast(resp models.ForecastResponse) models.Forecast {
	days := make([]models.ForecastDay, 0, len(resp.Forecast.ForecastDay))
	for _, fd := range resp.Forecast.ForecastDay {
		days = append(days, models.ForecastDay{
			Date:          fd.Date,
			Condition:     fd.Day.Condition.Text,
			MaxTempC:      fd.Day.MaxTempC,
			MinTempC:      fd.Day.MinTempC,
			AvgTempC:      fd.Day.AvgTempC,
			MaxWindKph:    fd.Day.MaxWindKph,
			TotalPrecipMm: fd.Day.TotalPrecipMm,
			AvgHumidity:   fd.Day.AvgHumidity,
			ChanceOfRain:  fd.Day.DailyChanceOfRain,
			UV:            fd.Day.UV,
			Sunrise:       fd.Astro.Sunrise,
			Sunset:        fd.Astro.Sunset,
		})
	}

	return models.Forecast{
		Location: resp.Location.DisplayName(),
		Days:     days,
	}
}

func toAirQuality(resp models.CurrentResponse) (models.AirQuality, error) {
	aq := resp.Current.AirQuality
	if aq == nil {
		return models.AirQuality{}, ErrAirQualityUnavailable
	}

	return models.AirQuality{
		Location:     resp.Location.DisplayName(),
		CO:           round2(aq.CO),
		O3:           round2(aq.O3),
		NO2:          round2(aq.NO2),
		SO2:          round2(aq.SO2),
		PM25:         round2(aq.PM25),
		PM10:         round2(aq.PM10),
		USEPAIndex:   aq.USEPAIndex,
		GBDefraIndex: aq.GBDefraIndex,
	}, nil
}

func toAstronomy(resp models.AstronomyResponse, date string) models.Astronomy {
	a := resp.Astronomy.Astro
	return models.Astronomy{
		Location:         resp.Location.DisplayName(),
		Date:             date,
		Sunrise:          a.Sunrise,
		Sunset:           a.Sunset,
		Moonrise:         a.Moonrise,
		Moonset:          a.Moonset,
		MoonPhase:        a.MoonPhase,
		MoonIllumination: moonIllumination(a.MoonIllumination),
		IsSunUp:          a.IsSunUp == 1,
		IsMoonUp:         a.IsMoonUp == 1,
	}
}

func moonIllumination(n json.Number) int {
	if n == "" {
		return 0
	}
	if i, err := n.Int64(); err == nil {
		return int(i)
	}
	if f, err := n.Float64(); err == nil {
		return int(math.Round(f))
	}
	return 0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
