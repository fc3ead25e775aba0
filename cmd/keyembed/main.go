// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command keyembed regenerates internal/embedded/embedded_key.go.
//
// With a key (--api-key or WEATHER_API_KEY) the key is encrypted, verified
// and stored as three fragments; without one the empty artifact is written.
// The key is never printed.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/go-weather-term/internal/embedder"
	"github.com/MKhiriev/go-weather-term/internal/logger"
	"github.com/spf13/pflag"
)

const (
	defaultOut     = "internal/embedded/embedded_key.go"
	defaultVersion = "0.0.0-dev"
)

type options struct {
	apiKey  string
	out     string
	version string
}

func main() {
	log := logger.NewLogger("keyembed")

	if err := run(os.Args[1:], os.Getenv, os.Stdout, time.Now()); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Error().Err(err).Msg("key embedding failed")
		os.Exit(1)
	}
}

func parseOptions(args []string, getenv func(string) string, out io.Writer) (options, error) {
	fs := pflag.NewFlagSet("keyembed", pflag.ContinueOnError)
	fs.SetOutput(out)

	version := getenv("APP_VERSION")
	if version == "" {
		version = defaultVersion
	}

	var opts options
	fs.StringVar(&opts.apiKey, "api-key", "", "WeatherAPI key to embed (default $WEATHER_API_KEY)")
	fs.StringVarP(&opts.out, "out", "o", defaultOut, "path of the generated Go file")
	fs.StringVar(&opts.version, "version", version, "version recorded in build metadata (default $APP_VERSION)")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if opts.apiKey == "" {
		opts.apiKey = getenv("WEATHER_API_KEY")
	}

	return opts, nil
}

func run(args []string, getenv func(string) string, stdout io.Writer, now time.Time) error {
	opts, err := parseOptions(args, getenv, stdout)
	if err != nil {
		return err
	}

	if opts.apiKey == "" {
		if err = embedder.WriteFile(opts.out, embedder.Empty(opts.version, now)); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "no api key provided, wrote empty artifact to %s\n", opts.out)
		return nil
	}

	artifact, err := embedder.Embed(opts.apiKey, opts.version, now)
	if err != nil {
		return err
	}

	if err = embedder.WriteFile(opts.out, artifact); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "embedded api key (version %s, built %s) into %s\n",
		artifact.Metadata.Version, artifact.Metadata.BuildTime, opts.out)
	return nil
}
