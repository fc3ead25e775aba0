// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-weather-term/internal/adapter"
	"github.com/MKhiriev/go-weather-term/internal/config"
	"github.com/MKhiriev/go-weather-term/internal/credentials"
	"github.com/MKhiriev/go-weather-term/internal/embedded"
	"github.com/MKhiriev/go-weather-term/internal/logger"
	"github.com/MKhiriev/go-weather-term/internal/service"
	"github.com/MKhiriev/go-weather-term/internal/store"
	"github.com/MKhiriev/go-weather-term/internal/tui"
	"github.com/MKhiriev/go-weather-term/internal/workers"
	"github.com/MKhiriev/go-weather-term/models"
)

// BuildInfo carries the values injected by the linker.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

type App struct {
	args     []string
	keyErr   error
	services *service.Services
	workers  *workers.Workers
	tui      *tui.TUI
	storages *store.ClientStorages
	out      io.Writer
	logger   *logger.Logger
}

// NewApp resolves the API key and wires the application. A missing key is
// not an error here: lookups fail with it later.
func NewApp(ctx context.Context, cfg *config.ClientConfig, build BuildInfo, logger *logger.Logger) (*App, error) {
	ctx = logger.WithContext(ctx)

	apiKey, keySource, keyErr := credentials.ResolveWithSource(ctx, credentials.EmbeddedSource(cfg.Weather.APIKey))
	if keyErr != nil {
		logger.Warn().Err(keyErr).Msg("weather lookups disabled")
	} else {
		logger.Info().Str("key_source", string(keySource)).Msg("api key resolved")
	}

	var weatherAdapter adapter.WeatherAdapter
	if keyErr == nil {
		var err error
		weatherAdapter, err = adapter.NewWeatherAPIAdapter(cfg.Weather, apiKey, logger.Component("weatherapi"))
		if err != nil {
			return nil, fmt.Errorf("error creating weather adapter: %w", err)
		}
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating local storage: %w", err)
	}

	info := models.NewAppBuildInfo(appVersion(cfg.App, build), build.Date, build.Commit, embedded.BuildMetadata, keySource)

	services, err := service.NewServices(weatherAdapter, keyErr, storages, info, cfg, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	return &App{
		args:     cfg.Args,
		keyErr:   keyErr,
		services: services,
		workers:  workers.NewWorkers(services, logger.Component("workers")),
		tui:      tui.New(services, keyErr, logger.Component("tui")),
		storages: storages,
		out:      os.Stdout,
		logger:   logger,
	}, nil
}

// Run performs startup maintenance, then runs the subcommand given in the
// arguments or, without one, the TUI.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)
	a.workers.Run(ctx)

	if len(a.args) == 0 {
		return a.tui.Run(ctx)
	}
	return a.runCommand(ctx, a.args)
}

// SetOutput redirects subcommand output, os.Stdout by default.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

func (a *App) Close() error {
	if a.storages == nil {
		return nil
	}
	return a.storages.Close()
}

func appVersion(cfg config.ClientApp, build BuildInfo) string {
	switch {
	case cfg.Version != "":
		return cfg.Version
	case build.Version != "":
		return build.Version
	default:
		return embedded.BuildMetadata.Version
	}
}
