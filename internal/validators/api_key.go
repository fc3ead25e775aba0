// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "strings"

// MinAPIKeyLength is the shortest key accepted from any source.
const MinAPIKeyLength = 10

// placeholderKeys are sample values from docs and .env templates.
var placeholderKeys = []string{
	"your_api_key_here",
	"demo_key_replace_with_real_key",
}

// ValidateAPIKey checks the basic shape of a WeatherAPI key: at least
// [MinAPIKeyLength] characters after trimming and not a known placeholder.
// The key itself is never part of the returned error.
func ValidateAPIKey(key string) error {
	trimmed := strings.TrimSpace(key)
	if len(trimmed) < MinAPIKeyLength {
		return ErrAPIKeyTooShort
	}

	for _, p := range placeholderKeys {
		if trimmed == p {
			return ErrAPIKeyPlaceholder
		}
	}

	return nil
}

// IsValidAPIKey reports whether [ValidateAPIKey] accepts key.
func IsValidAPIKey(key string) bool {
	return ValidateAPIKey(key) == nil
}
