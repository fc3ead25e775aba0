// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"

	"github.com/MKhiriev/go-weather-term/internal/app"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
	ErrNoLocation      = errors.New("no location given and no default location set")
)

// ErrorMessage turns a Run error into the text printed to the terminal.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrUnknownCommand), errors.Is(err, ErrMissingArgument):
		return err.Error() + "\n\n" + Usage
	case errors.Is(err, ErrNoLocation):
		return app.MsgNoLocation
	default:
		return app.HumanizeError(err)
	}
}
