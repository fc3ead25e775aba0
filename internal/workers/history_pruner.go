// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-weather-term/internal/logger"
)

// pruner is the part of service.HistoryService the worker needs.
type pruner interface {
	Prune(ctx context.Context) (int64, error)
}

// historyPruner trims the location history to the configured limit.
type historyPruner struct {
	history pruner
	logger  *logger.Logger
}

func NewHistoryPruner(history pruner, logger *logger.Logger) Worker {
	return &historyPruner{
		history: history,
		logger:  logger,
	}
}

// Run prunes once. Errors are logged; history size is not worth failing
// startup for.
func (p *historyPruner) Run(ctx context.Context) {
	removed, err := p.history.Prune(ctx)
	if err != nil {
		p.logger.Err(err).Str("func", "historyPruner.Run").Msg("failed to prune location history")
		return
	}

	if removed > 0 {
		p.logger.Info().Str("func", "historyPruner.Run").Int64("removed", removed).Msg("location history pruned")
	}
}
