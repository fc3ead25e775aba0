// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-weather-term/models"
	"github.com/go-resty/resty/v2"
)

// WeatherAPI error codes, see https://www.weatherapi.com/docs/#intro-error-codes.
const (
	apiCodeKeyMissing      = 1002
	apiCodeNoLocation      = 1006
	apiCodeKeyInvalid      = 2006
	apiCodeQuotaExceeded   = 2007
	apiCodeKeyDisabled     = 2008
	apiCodeAccessForbidden = 2009
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	code, message := parseAPIError(resp.Body())

	switch code {
	case apiCodeNoLocation:
		return fmt.Errorf("%w: %s", ErrLocationNotFound, message)
	case apiCodeKeyMissing, apiCodeKeyInvalid:
		return ErrInvalidAPIKey
	case apiCodeQuotaExceeded:
		return fmt.Errorf("%w: %s", ErrRateLimited, message)
	case apiCodeKeyDisabled, apiCodeAccessForbidden:
		return fmt.Errorf("%w: %s", ErrAPIKeyDisabled, message)
	}

	switch status := resp.StatusCode(); {
	case status == http.StatusUnauthorized:
		return ErrInvalidAPIKey
	case status == http.StatusForbidden:
		return ErrAPIKeyDisabled
	case status == http.StatusNotFound:
		return ErrLocationNotFound
	case status == http.StatusTooManyRequests:
		return ErrRateLimited
	case status == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d", ErrUpstreamUnavailable, status)
	default:
		if message == "" {
			message = http.StatusText(status)
		}
		return fmt.Errorf("http %d: %s", status, message)
	}
}

func parseAPIError(body []byte) (int, string) {
	var apiErr models.APIErrorResponse
	if err := json.Unmarshal(body, &apiErr); err != nil {
		return 0, ""
	}

	return apiErr.Error.Code, strings.TrimSpace(apiErr.Error.Message)
}

// mapTransportError turns a client-side failure into ErrNetwork. The request
// URL carries the API key, so *url.Error is rebuilt without it.
func mapTransportError(op string, err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w: %w", op, ErrNetwork, urlErr.Err)
	}

	for _, ctxErr := range []error{context.Canceled, context.DeadlineExceeded} {
		if errors.Is(err, ctxErr) {
			return fmt.Errorf("%s: %w: %w", op, ErrNetwork, ctxErr)
		}
	}

	return fmt.Errorf("%s: %w", op, ErrNetwork)
}
