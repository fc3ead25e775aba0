// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"strings"

	"github.com/MKhiriev/go-weather-term/models"
)

// strictB64 rejects non-canonical padding bits. The decoder still skips
// CR and LF, so decodeCanonical rejects those separately; together they
// make every accepted input re-encode to itself.
var strictB64 = base64.StdEncoding.Strict()

func decodeCanonical(s string) ([]byte, error) {
	if strings.ContainsAny(s, "\r\n") {
		return nil, ErrMalformedBase64
	}
	return strictB64.DecodeString(s)
}

// Split cuts the decoded bytes of payload into three contiguous ranges of
// near-equal size (the last one takes the remainder) and base64-encodes each
// range. For payloads shorter than three bytes some parts are empty strings.
//
// Splitting is format-preserving obfuscation, not encryption.
func Split(payload string) (models.KeyFragments, error) {
	raw, err := decodeCanonical(payload)
	if err != nil {
		return models.KeyFragments{}, formatErr("split", ErrMalformedBase64)
	}

	third := len(raw) / 3

	return models.KeyFragments{
		Part1: strictB64.EncodeToString(raw[:third]),
		Part2: strictB64.EncodeToString(raw[third : 2*third]),
		Part3: strictB64.EncodeToString(raw[2*third:]),
	}, nil
}

// Join decodes the three fragments, concatenates them in order and
// re-encodes the result. It is the inverse of [Split].
func Join(parts models.KeyFragments) (string, error) {
	var joined []byte
	for _, part := range []string{parts.Part1, parts.Part2, parts.Part3} {
		raw, err := decodeCanonical(part)
		if err != nil {
			return "", formatErr("join", ErrMalformedBase64)
		}
		joined = append(joined, raw...)
	}

	return strictB64.EncodeToString(joined), nil
}
