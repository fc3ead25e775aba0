// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credentials

import (
	"errors"
	"fmt"
)

// ErrMissingCredential is matched by every *MissingCredentialError.
var ErrMissingCredential = errors.New("no weather api key available")

// Remediation is the user-facing instruction shown when no key is found.
const Remediation = "set the WEATHER_API_KEY environment variable (or pass --api-key) " +
	"to a key from https://www.weatherapi.com/, or use a release build with an embedded key"

// MissingCredentialError reports that neither the operator override nor
// the embedded artifact produced a usable key. Reason never contains key
// material.
type MissingCredentialError struct {
	Reason string
}

func (e *MissingCredentialError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %s", ErrMissingCredential, Remediation)
	}
	return fmt.Sprintf("%s (%s): %s", ErrMissingCredential, e.Reason, Remediation)
}

func (e *MissingCredentialError) Is(target error) bool {
	return target == ErrMissingCredential
}
