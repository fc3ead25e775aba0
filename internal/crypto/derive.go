// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"golang.org/x/crypto/scrypt"
)

const (
	// appIdentifier and appSalt are the only inputs of the key derivation.
	// Changing either one invalidates every key embedded by older builds.
	appIdentifier = "wait-weather-app|som2025"
	appSalt       = "weather-api-salt"

	// scrypt cost parameters (N, r, p).
	scryptN = 1 << 14
	scryptR = 8
	scryptP = 1

	// KeySize is the AES-256 key length in bytes.
	KeySize = 32
	// IVSize is the AES block size, which is also the CBC IV length.
	IVSize = 16
)

// DeriveKey returns the 32-byte AES key computed with scrypt from the
// compiled-in application identifier and salt. Identical constants always
// produce the identical key.
//
// scrypt only fails on invalid cost parameters, and those are constants, so
// an error here is a programming mistake and panics.
func DeriveKey() []byte {
	key, err := scrypt.Key([]byte(appIdentifier), []byte(appSalt), scryptN, scryptR, scryptP, KeySize)
	if err != nil {
		panic("crypto: invalid scrypt parameters: " + err.Error())
	}
	return key
}
