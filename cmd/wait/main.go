// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command wait is the Weather App In Terminal client.
//
// Without a subcommand it starts the terminal UI; with one it prints a
// single report and exits. Run "wait help" for the list of subcommands.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-weather-term/internal/client"
	"github.com/MKhiriev/go-weather-term/internal/config"
	"github.com/MKhiriev/go-weather-term/internal/logger"
	"github.com/spf13/pflag"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("wait")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, log)
	stop()

	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, log *logger.Logger) int {
	cfg, err := config.GetClientConfig(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintln(stdout, client.Usage)
			return 0
		}
		log.Err(err).Msg("error getting configs")
		fmt.Fprintf(stderr, "invalid configuration: %v\n", err)
		return 2
	}

	build := client.BuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	}

	app, err := client.NewApp(ctx, cfg, build, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		fmt.Fprintln(stderr, client.ErrorMessage(err))
		return 1
	}
	defer app.Close()
	app.SetOutput(stdout)

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintln(stderr, client.ErrorMessage(err))
		return 1
	}

	return 0
}
