// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-weather-term/internal/adapter"
	"github.com/MKhiriev/go-weather-term/internal/credentials"
	"github.com/MKhiriev/go-weather-term/internal/service"
	"github.com/MKhiriev/go-weather-term/internal/validators"
)

var messages = []struct {
	target error
	msg    string
}{
	{credentials.ErrMissingCredential, MsgMissingAPIKey},
	{adapter.ErrInvalidAPIKey, MsgInvalidAPIKey},
	{adapter.ErrAPIKeyDisabled, MsgAPIKeyDisabled},
	{adapter.ErrRateLimited, MsgRateLimited},
	{adapter.ErrLocationNotFound, MsgLocationNotFound},
	{validators.ErrInvalidLocation, MsgInvalidLocation},
	{validators.ErrInvalidForecastDays, MsgInvalidForecastDays},
	{validators.ErrInvalidDate, MsgInvalidDate},
	{service.ErrAirQualityUnavailable, MsgAirQualityUnavailable},
	{adapter.ErrUpstreamUnavailable, MsgUpstreamUnavailable},
	{context.DeadlineExceeded, MsgTimeout},
	{adapter.ErrNetwork, MsgNetwork},
}

// HumanizeError maps err to a message fit for the terminal. Errors without a
// dedicated message get MsgUnexpected so raw internals never reach the user.
func HumanizeError(err error) string {
	if err == nil {
		return ""
	}

	for _, m := range messages {
		if errors.Is(err, m.target) {
			return m.msg
		}
	}

	return MsgUnexpected
}
