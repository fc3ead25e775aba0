// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package credentials decides which WeatherAPI key the client uses.
//
// An operator supplied key always wins. Otherwise the fragments compiled
// into the binary are joined and decrypted. A broken embedded artifact is
// never fatal on its own: it is logged and treated as absent.
package credentials

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-weather-term/internal/crypto"
	"github.com/MKhiriev/go-weather-term/internal/embedded"
	"github.com/MKhiriev/go-weather-term/internal/logger"
	"github.com/MKhiriev/go-weather-term/internal/validators"
	"github.com/MKhiriev/go-weather-term/models"
)

// EnvAPIKey is the environment variable holding the operator key.
const EnvAPIKey = "WEATHER_API_KEY"

// Source lists the inputs considered by Resolve.
type Source struct {
	// Override is the operator key from the environment or a flag.
	Override  string
	Fragments models.KeyFragments
	Metadata  models.BuildMetadata
}

// EmbeddedSource returns a Source backed by the compiled-in artifact.
func EmbeddedSource(override string) Source {
	return Source{
		Override:  override,
		Fragments: embedded.APIKeyParts,
		Metadata:  embedded.BuildMetadata,
	}
}

// Resolve returns the API key to use. Precedence: valid override, then a
// valid embedded key, otherwise *MissingCredentialError.
func Resolve(ctx context.Context, src Source) (string, error) {
	key, _, err := resolve(ctx, src)
	return key, err
}

// ResolveAPIKey resolves from WEATHER_API_KEY and the compiled-in artifact.
func ResolveAPIKey(ctx context.Context) (string, error) {
	return Resolve(ctx, EmbeddedSource(os.Getenv(EnvAPIKey)))
}

// ResolveWithSource is Resolve that also reports where the key came from.
func ResolveWithSource(ctx context.Context, src Source) (string, models.KeySource, error) {
	return resolve(ctx, src)
}

func resolve(ctx context.Context, src Source) (string, models.KeySource, error) {
	log := logger.FromContext(ctx)

	if override := strings.TrimSpace(src.Override); override != "" {
		err := validators.ValidateAPIKey(override)
		if err == nil {
			return override, models.KeySourceOverride, nil
		}
		log.Warn().Err(err).Msg("ignoring operator api key")
	}

	if !src.Metadata.HasEmbeddedKey || src.Fragments.Part1 == "" {
		return "", models.KeySourceNone, &MissingCredentialError{Reason: reasonFor(src)}
	}

	key, err := openEmbedded(src.Fragments)
	if err != nil {
		log.Warn().
			Err(err).
			Str("build_version", src.Metadata.Version).
			Msg("embedded api key unusable, treating as absent")
		return "", models.KeySourceNone, &MissingCredentialError{Reason: "embedded key could not be used"}
	}

	return key, models.KeySourceEmbedded, nil
}

func openEmbedded(parts models.KeyFragments) (string, error) {
	payload, err := crypto.Join(parts)
	if err != nil {
		return "", fmt.Errorf("join fragments: %w", err)
	}

	key, err := crypto.Decrypt(payload)
	if err != nil {
		return "", fmt.Errorf("decrypt payload: %w", err)
	}
	key = strings.TrimSpace(key)

	if err = validators.ValidateAPIKey(key); err != nil {
		return "", fmt.Errorf("embedded key rejected: %w", err)
	}

	return key, nil
}

func reasonFor(src Source) string {
	switch {
	case strings.TrimSpace(src.Override) != "":
		return "provided key is not valid and no key is embedded"
	default:
		return "no key provided and none embedded in this build"
	}
}
