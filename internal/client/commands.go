// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-weather-term/internal/format"
	"github.com/MKhiriev/go-weather-term/models"
)

// Usage lists the subcommands.
const Usage = `Usage: wait [flags] [command] [arguments]

Without a command the interactive terminal UI starts.

Commands:
  current, now <location>              current conditions
  forecast, fc <location> [days]       daily forecast (1-10 days)
  air, aqi <location>                  air quality
  astro, astronomy <location> [date]   sun and moon times (YYYY-MM-DD)
  overview, all <location> [days]      current, forecast and astronomy
  search, find <term>                  find matching locations
  history                              recently looked up locations
  units [metric|imperial]              show or switch display units
  version                              build information
  help                                 this text

A missing <location> falls back to the default location.`

func (a *App) runCommand(ctx context.Context, args []string) error {
	name, rest := strings.ToLower(args[0]), args[1:]

	switch name {
	case "current", "now":
		return a.withKey(ctx, rest, a.cmdCurrent)
	case "forecast", "fc":
		return a.withKey(ctx, rest, a.cmdForecast)
	case "air", "aqi":
		return a.withKey(ctx, rest, a.cmdAirQuality)
	case "astro", "astronomy":
		return a.withKey(ctx, rest, a.cmdAstronomy)
	case "overview", "all":
		return a.withKey(ctx, rest, a.cmdOverview)
	case "search", "find":
		return a.withKey(ctx, rest, a.cmdSearch)
	case "history":
		return a.cmdHistory(ctx)
	case "units":
		return a.cmdUnits(ctx, rest)
	case "version":
		return a.cmdVersion(ctx)
	case "help", "-h", "--help":
		_, err := fmt.Fprintln(a.out, Usage)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
}

func (a *App) withKey(ctx context.Context, args []string, run func(context.Context, []string) error) error {
	if a.keyErr != nil {
		return a.keyErr
	}
	return run(ctx, args)
}

func (a *App) cmdCurrent(ctx context.Context, args []string) error {
	location, prefs, err := a.location(ctx, args)
	if err != nil {
		return err
	}

	weather, err := a.services.WeatherService.Current(ctx, location)
	if err != nil {
		return err
	}
	return a.print(format.CurrentReport(weather, prefs))
}

func (a *App) cmdForecast(ctx context.Context, args []string) error {
	args, days, ok := trailingDays(args)
	location, prefs, err := a.location(ctx, args)
	if err != nil {
		return err
	}
	if !ok {
		days = prefs.ForecastDays
	}

	forecast, err := a.services.WeatherService.Forecast(ctx, location, days)
	if err != nil {
		return err
	}
	return a.print(format.ForecastReport(forecast, prefs))
}

func (a *App) cmdAirQuality(ctx context.Context, args []string) error {
	location, _, err := a.location(ctx, args)
	if err != nil {
		return err
	}

	aq, err := a.services.WeatherService.AirQuality(ctx, location)
	if err != nil {
		return err
	}
	return a.print(format.AirQualityReport(aq))
}

func (a *App) cmdAstronomy(ctx context.Context, args []string) error {
	args, date := trailingDate(args)
	location, _, err := a.location(ctx, args)
	if err != nil {
		return err
	}

	astro, err := a.services.WeatherService.Astronomy(ctx, location, date)
	if err != nil {
		return err
	}
	return a.print(format.AstronomyReport(astro))
}

func (a *App) cmdOverview(ctx context.Context, args []string) error {
	args, days, ok := trailingDays(args)
	location, prefs, err := a.location(ctx, args)
	if err != nil {
		return err
	}
	if !ok {
		days = prefs.ForecastDays
	}

	overview, err := a.services.WeatherService.Overview(ctx, location, days)
	if err != nil {
		return err
	}

	return a.print(strings.Join([]string{
		format.CurrentReport(overview.Current, prefs),
		format.ForecastReport(overview.Forecast, prefs),
		format.AstronomyReport(overview.Astronomy),
	}, "\n"))
}

func (a *App) cmdSearch(ctx context.Context, args []string) error {
	term := strings.Join(args, " ")
	if strings.TrimSpace(term) == "" {
		return fmt.Errorf("%w: search term", ErrMissingArgument)
	}

	matches, err := a.services.WeatherService.Search(ctx, term)
	if err != nil {
		return err
	}
	return a.print(format.SearchReport(term, matches))
}

func (a *App) cmdHistory(ctx context.Context) error {
	entries, err := a.services.HistoryService.Recent(ctx, 0)
	if err != nil {
		return err
	}
	return a.print(format.HistoryReport(entries))
}

func (a *App) cmdUnits(ctx context.Context, args []string) error {
	var (
		prefs models.UnitPreferences
		err   error
	)
	if len(args) == 0 {
		prefs, err = a.services.PreferencesService.Get(ctx)
	} else {
		prefs, err = a.services.PreferencesService.SetPreset(ctx, strings.ToLower(args[0]))
	}
	if err != nil {
		return err
	}
	return a.print(format.PreferencesReport(prefs))
}

func (a *App) cmdVersion(ctx context.Context) error {
	info := a.services.AppInfoService.GetBuildInfo(ctx)
	meta := info.KeyMetadata()

	var b strings.Builder
	fmt.Fprintf(&b, "wait version %s\n", info.BuildVersion())
	fmt.Fprintf(&b, "Build date: %s\n", orNA(info.BuildDate()))
	fmt.Fprintf(&b, "Build commit: %s\n", orNA(info.BuildCommit()))
	fmt.Fprintf(&b, "Embedded API key: %t\n", meta.HasEmbeddedKey)
	source := info.KeySource()
	if a.keyErr != nil {
		source = models.KeySourceNone
	}
	fmt.Fprintf(&b, "API key source: %s\n", source)

	return a.print(b.String())
}

// location joins args into a location, falling back to the saved default.
func (a *App) location(ctx context.Context, args []string) (string, models.UnitPreferences, error) {
	prefs, err := a.services.PreferencesService.Get(ctx)
	if err != nil {
		return "", prefs, err
	}

	location := strings.Join(args, " ")
	if strings.TrimSpace(location) == "" {
		location = prefs.DefaultLocation
	}
	if strings.TrimSpace(location) == "" {
		return "", prefs, ErrNoLocation
	}

	return location, prefs, nil
}

func (a *App) print(text string) error {
	_, err := fmt.Fprint(a.out, strings.TrimRight(text, "\n")+"\n")
	return err
}

// trailingDays splits a trailing day count off args. A lone number is a
// location (a postcode), not a day count.
func trailingDays(args []string) ([]string, int, bool) {
	if len(args) < 2 {
		return args, 0, false
	}
	days, err := strconv.Atoi(args[len(args)-1])
	if err != nil {
		return args, 0, false
	}
	return args[:len(args)-1], days, true
}

// trailingDate splits a trailing YYYY-MM-DD shaped argument off args. The
// value itself is validated by the weather service.
func trailingDate(args []string) ([]string, string) {
	if len(args) < 2 {
		return args, ""
	}
	last := args[len(args)-1]
	if len(last) != 10 || last[4] != '-' || last[7] != '-' {
		return args, ""
	}
	return args[:len(args)-1], last
}

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return "N/A"
	}
	return v
}
