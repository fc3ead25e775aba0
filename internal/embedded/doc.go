// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package embedded holds the build-time generated API key artifact.
//
// embedded_key.go is regenerated by cmd/keyembed during release builds and
// is committed in its empty state, so a plain `go build` produces a client
// that requires WEATHER_API_KEY at runtime.
//
//go:generate go run ../../cmd/keyembed --out embedded_key.go
package embedded
