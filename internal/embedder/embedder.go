// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package embedder produces the Go source of package embedded: the API key
// is validated, encrypted, verified by a decrypt round-trip, split into
// three fragments and rendered together with build metadata.
package embedder

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/MKhiriev/go-weather-term/internal/crypto"
	"github.com/MKhiriev/go-weather-term/internal/validators"
	"github.com/MKhiriev/go-weather-term/models"
)

// Artifact is everything written to the generated file.
type Artifact struct {
	Fragments models.KeyFragments
	Metadata  models.BuildMetadata
}

// Embed encrypts plaintext, stripped of surrounding whitespace, and returns
// the artifact for it. The round-trip self-test guards against shipping a
// binary that cannot read its own key.
func Embed(plaintext, version string, now time.Time) (Artifact, error) {
	plaintext = strings.TrimSpace(plaintext)
	if err := validators.ValidateAPIKey(plaintext); err != nil {
		return Artifact{}, fmt.Errorf("invalid api key: %w", err)
	}

	payload, err := crypto.Encrypt(plaintext)
	if err != nil {
		return Artifact{}, fmt.Errorf("encrypt api key: %w", err)
	}

	decrypted, err := crypto.Decrypt(payload)
	if err != nil {
		return Artifact{}, fmt.Errorf("%w: %w", ErrSelfTestFailed, err)
	}
	if decrypted != plaintext {
		return Artifact{}, ErrSelfTestFailed
	}

	parts, err := crypto.Split(payload)
	if err != nil {
		return Artifact{}, fmt.Errorf("split payload: %w", err)
	}

	joined, err := crypto.Join(parts)
	if err != nil || joined != payload {
		return Artifact{}, fmt.Errorf("%w: fragments do not reassemble", ErrSelfTestFailed)
	}

	return Artifact{
		Fragments: parts,
		Metadata:  metadata(version, now, true),
	}, nil
}

// Empty returns the artifact of a build without an embedded key.
func Empty(version string, now time.Time) Artifact {
	return Artifact{Metadata: metadata(version, now, false)}
}

func metadata(version string, now time.Time, hasKey bool) models.BuildMetadata {
	return models.BuildMetadata{
		BuildTime:      now.UTC().Format(time.RFC3339),
		Version:        version,
		HasEmbeddedKey: hasKey,
	}
}

var sourceTemplate = template.Must(template.New("embedded").Parse(`// Code generated by keyembed. DO NOT EDIT.

package embedded

import "github.com/MKhiriev/go-weather-term/models"

// APIKeyParts holds the obfuscated, encrypted API key fragments.
var APIKeyParts = models.KeyFragments{
	Part1: {{printf "%q" .Fragments.Part1}},
	Part2: {{printf "%q" .Fragments.Part2}},
	Part3: {{printf "%q" .Fragments.Part3}},
}

// BuildMetadata describes the build that produced APIKeyParts.
var BuildMetadata = models.BuildMetadata{
	BuildTime: {{printf "%q" .Metadata.BuildTime}},
	Version: {{printf "%q" .Metadata.Version}},
	HasEmbeddedKey: {{.Metadata.HasEmbeddedKey}},
}
`))

// Render returns gofmt-ed Go source for the artifact.
func Render(a Artifact) ([]byte, error) {
	var buf bytes.Buffer
	if err := sourceTemplate.Execute(&buf, a); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}

	return src, nil
}

// WriteFile renders the artifact and replaces path atomically.
func WriteFile(path string, a Artifact) error {
	src, err := Render(a)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	tmpFile, err := os.CreateTemp(dir, ".embedded-key-*.go.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	tmpPath := tmpFile.Name()

	if _, err = tmpFile.Write(src); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	if err = tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	if err = os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	return nil
}
