// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultUserAgent    = "wait-weather-client"
	defaultRetryWait    = 300 * time.Millisecond
	defaultRetryMaxWait = 2 * time.Second
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://api.weatherapi.com/v1", 10*time.Second, 2)
//	resp, err := client.R().Get("/current.json")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL.
//
// Requests time out after timeout and are retried up to retries times on
// transport errors and 5xx responses. 4xx responses are never retried.
// Each call returns an independent client with its own connection pool.
func NewHTTPClient(baseURL string, timeout time.Duration, retries int) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(retries).
		SetRetryWaitTime(defaultRetryWait).
		SetRetryMaxWaitTime(defaultRetryMaxWait).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", defaultUserAgent).
		AddRetryCondition(retryOnServerError)

	return &HTTPClient{Client: client}
}

func retryOnServerError(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}

	return r != nil && r.StatusCode() >= http.StatusInternalServerError
}
