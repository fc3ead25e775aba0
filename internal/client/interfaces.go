// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is what cmd/wait drives: one Run per process, then Close.
type Client interface {
	// Run executes a subcommand or the TUI and returns when it finishes.
	Run(ctx context.Context) error
	Close() error
}

var _ Client = (*App)(nil)
