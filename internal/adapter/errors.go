// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrLocationNotFound    = errors.New("location not found")
	ErrInvalidAPIKey       = errors.New("invalid api key")
	ErrAPIKeyDisabled      = errors.New("api key disabled or quota exceeded")
	ErrRateLimited         = errors.New("api rate limit exceeded")
	ErrUpstreamUnavailable = errors.New("weather service unavailable")
	ErrNetwork             = errors.New("network error")
	ErrDecodeResponse      = errors.New("unexpected response from weather service")
)
