// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-weather-term/internal/logger"
	"github.com/MKhiriev/go-weather-term/internal/service"
)

// Workers runs its jobs sequentially.
type Workers struct {
	workers []Worker
}

// NewWorkers builds the client workers: currently only the history pruner.
func NewWorkers(services *service.Services, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewHistoryPruner(services.HistoryService, logger),
		},
	}
}

// Run runs every worker in order and skips the rest once ctx is done.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		if ctx.Err() != nil {
			return
		}
		worker.Run(ctx)
	}
}
