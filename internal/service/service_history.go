// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-weather-term/internal/config"
	"github.com/MKhiriev/go-weather-term/internal/logger"
	"github.com/MKhiriev/go-weather-term/internal/store"
	"github.com/MKhiriev/go-weather-term/models"
)

type historyService struct {
	historyRepository store.LocationHistoryRepository
	limit             int

	logger *logger.Logger
}

func NewHistoryService(historyRepository store.LocationHistoryRepository, cfg config.ClientWorkers, logger *logger.Logger) HistoryService {
	return &historyService{
		historyRepository: historyRepository,
		limit:             cfg.HistoryLimit,
		logger:            logger,
	}
}

func (s *historyService) Recent(ctx context.Context, limit int) ([]models.LocationHistoryEntry, error) {
	if limit <= 0 || limit > s.limit {
		limit = s.limit
	}

	entries, err := s.historyRepository.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("error getting location history: %w", err)
	}

	return entries, nil
}

func (s *historyService) Prune(ctx context.Context) (int64, error) {
	removed, err := s.historyRepository.Prune(ctx, s.limit)
	if err != nil {
		return 0, fmt.Errorf("error pruning location history: %w", err)
	}

	s.logger.Debug().
		Str("func", "historyService.Prune").
		Int("keep", s.limit).
		Int64("removed", removed).
		Msg("location history pruned")

	return removed, nil
}

func (s *historyService) Clear(ctx context.Context) error {
	if err := s.historyRepository.Clear(ctx); err != nil {
		return fmt.Errorf("error clearing location history: %w", err)
	}
	return nil
}
