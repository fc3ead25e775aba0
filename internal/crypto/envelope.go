// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
)

const (
	// EnvelopeVersion is the envelope format written by [Encrypt].
	EnvelopeVersion = 1
	// AlgorithmAES256CBC is the only algorithm [Decrypt] supports, and the
	// one assumed for legacy payloads.
	AlgorithmAES256CBC = "aes-256-cbc"
)

// envelope is the versioned record stored after the IV. Pointer fields let
// the parser tell an absent field from a zero value.
type envelope struct {
	Version    *int    `json:"v"`
	Algorithm  string  `json:"alg,omitempty"`
	Ciphertext *string `json:"ct"`
}

// payloadFormat tags how the bytes following the IV were laid out.
type payloadFormat int

const (
	// formatLegacy is the pre-envelope layout: raw ciphertext bytes.
	formatLegacy payloadFormat = iota
	// formatEnvelope is base64(JSON(envelope)).
	formatEnvelope
)

func (f payloadFormat) String() string {
	switch f {
	case formatLegacy:
		return "legacy"
	case formatEnvelope:
		return "envelope"
	default:
		return "unknown"
	}
}

// sealedBody is the parsed form of the bytes that follow the IV.
type sealedBody struct {
	format     payloadFormat
	version    int
	algorithm  string
	ciphertext []byte
}

// encodeEnvelope renders ciphertext as the base64 JSON envelope.
func encodeEnvelope(algorithm string, ciphertext []byte) ([]byte, error) {
	version := EnvelopeVersion
	ct := hex.EncodeToString(ciphertext)

	raw, err := json.Marshal(envelope{Version: &version, Algorithm: algorithm, Ciphertext: &ct})
	if err != nil {
		return nil, err
	}

	out := make([]byte, base64.StdEncoding.EncodedLen(len(raw)))
	base64.StdEncoding.Encode(out, raw)
	return out, nil
}

// parseBody decides between the envelope and legacy layouts. The body is an
// envelope only if it decodes as base64 into a JSON object; anything else is
// treated as legacy raw ciphertext. An object that parses but lacks the
// version or ciphertext field is an error rather than legacy data.
func parseBody(body []byte) (sealedBody, error) {
	raw := make([]byte, base64.StdEncoding.DecodedLen(len(body)))
	n, err := base64.StdEncoding.Decode(raw, body)
	if err != nil {
		return legacyBody(body), nil
	}

	var env envelope
	if err = json.Unmarshal(raw[:n], &env); err != nil {
		return legacyBody(body), nil
	}

	if env.Version == nil || env.Ciphertext == nil {
		return sealedBody{}, formatErr("parse envelope", ErrEnvelopeIncomplete)
	}
	if *env.Version != EnvelopeVersion {
		return sealedBody{}, formatErr("parse envelope", ErrUnsupportedVersion)
	}

	ciphertext, err := hex.DecodeString(*env.Ciphertext)
	if err != nil {
		return sealedBody{}, formatErr("parse envelope", ErrMalformedCiphertext)
	}

	algorithm := env.Algorithm
	if algorithm == "" {
		algorithm = AlgorithmAES256CBC
	}

	return sealedBody{
		format:     formatEnvelope,
		version:    *env.Version,
		algorithm:  algorithm,
		ciphertext: ciphertext,
	}, nil
}

func legacyBody(body []byte) sealedBody {
	return sealedBody{
		format:     formatLegacy,
		algorithm:  AlgorithmAES256CBC,
		ciphertext: body,
	}
}
