// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the wait application runtime.
//
// It resolves the WeatherAPI key once, wires the adapter, the local store,
// the services and the background workers, and then either runs a single
// subcommand or starts the terminal UI.
package client
