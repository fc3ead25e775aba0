// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers holds the startup maintenance jobs the client runs once
// before showing the menu or executing a subcommand.
package workers

import "context"

// Worker is a single maintenance job. Run must return promptly once ctx is
// done; failures are logged, never returned, so a broken job cannot keep
// the client from starting.
type Worker interface {
	Run(ctx context.Context)
}
