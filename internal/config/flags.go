// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// ParseFlags parses the global flags of the wait client and returns the
// remaining positional arguments (the subcommand and its operands).
// Parsing stops at the first positional argument.
//
// Flags:
//
//	--api-key          WeatherAPI key
//	--api-base-url     WeatherAPI base URL
//	--timeout          request timeout (e.g. "10s")
//	--retries          retry count for transient failures
//	-d, --db           sqlite DSN
//	-u, --units        metric or imperial
//	-l, --location     default location
//	--days             default forecast days
//	--history-limit    location history rows kept
//	-c, --config       json file path with configs
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	var cfg StructuredConfig

	fs := pflag.NewFlagSet("wait", pflag.ContinueOnError)
	fs.SetInterspersed(false)

	fs.StringVar(&cfg.Weather.APIKey, "api-key", "", "WeatherAPI key (overrides an embedded key)")
	fs.StringVar(&cfg.Weather.BaseURL, "api-base-url", "", "WeatherAPI base URL")
	fs.DurationVar(&cfg.Weather.RequestTimeout, "timeout", 0, "Request timeout (e.g., 10s)")
	fs.IntVar(&cfg.Weather.RetryCount, "retries", 0, "Retries for transient failures")
	fs.StringVarP(&cfg.Storage.DB.DSN, "db", "d", "", "Local database DSN")
	fs.StringVarP(&cfg.Preferences.Units, "units", "u", "", "Units: metric or imperial")
	fs.StringVarP(&cfg.Preferences.DefaultLocation, "location", "l", "", "Default location")
	fs.IntVar(&cfg.Preferences.ForecastDays, "days", 0, "Default forecast days (1-10)")
	fs.IntVar(&cfg.Workers.HistoryLimit, "history-limit", 0, "Location history entries kept")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &cfg, fs.Args(), nil
}
