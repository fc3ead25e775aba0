// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"

	"github.com/google/uuid"
)

// NewRequestID returns a time-ordered UUIDv7 so log lines for successive
// WeatherAPI calls sort naturally; it falls back to a random v4.
func NewRequestID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// EnsureRequestID returns ctx unchanged when it already carries a request
// ID, otherwise a child context holding a fresh one.
func EnsureRequestID(ctx context.Context) (context.Context, string) {
	if id, ok := GetRequestIDFromContext(ctx); ok {
		return ctx, id
	}
	id := NewRequestID()
	return WithRequestID(ctx, id), id
}
