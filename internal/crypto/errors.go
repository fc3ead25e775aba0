// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

// Sentinel causes carried by [FormatError] and [CryptoError]. Match them with
// errors.Is.
var (
	ErrMalformedBase64      = errors.New("malformed base64")
	ErrPayloadTooShort      = errors.New("payload is shorter than the iv")
	ErrEnvelopeIncomplete   = errors.New("envelope is missing required fields")
	ErrMalformedCiphertext  = errors.New("envelope ciphertext is not valid hex")
	ErrUnsupportedVersion   = errors.New("unsupported envelope version")
	ErrUnsupportedAlgorithm = errors.New("unsupported cipher algorithm")
	ErrDecryptFailed        = errors.New("decryption failed")
	ErrInvalidUTF8          = errors.New("decrypted data is not valid utf-8")
)

// FormatError reports input that could not be decoded or parsed: bad base64,
// a truncated payload or an incomplete envelope.
type FormatError struct {
	Op  string
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("crypto: %s: format error: %v", e.Op, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// CryptoError reports a cipher failure: wrong key or IV, corrupted
// ciphertext, bad padding, garbled output or an unknown algorithm. The
// message never contains key material or plaintext.
type CryptoError struct {
	Op  string
	Err error
}

func (e *CryptoError) Error() string {
	return fmt.Sprintf("crypto: %s: %v", e.Op, e.Err)
}

func (e *CryptoError) Unwrap() error {
	return e.Err
}

func formatErr(op string, err error) error {
	return &FormatError{Op: op, Err: err}
}

func cryptoErr(op string, err error) error {
	return &CryptoError{Op: op, Err: err}
}
