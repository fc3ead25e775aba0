// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/MKhiriev/go-weather-term/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitJoin_RoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 4, 5, 16, 47, 100} {
		raw := make([]byte, n)
		for i := range raw {
			raw[i] = byte(i*31 + 7)
		}
		s := base64.StdEncoding.EncodeToString(raw)

		parts, err := Split(s)
		require.NoError(t, err, "n=%d", n)

		joined, err := Join(parts)
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, s, joined, "n=%d", n)
	}
}

func TestSplit_EmptyPayload(t *testing.T) {
	parts, err := Split("")
	require.NoError(t, err)
	assert.True(t, parts.IsEmpty())

	joined, err := Join(parts)
	require.NoError(t, err)
	assert.Equal(t, "", joined)
}

func TestSplit_ShortPayloadsLeaveLeadingPartsEmpty(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    models.KeyFragments
	}{
		{
			name:    "one byte",
			payload: "QQ==",
			want:    models.KeyFragments{Part3: "QQ=="},
		},
		{
			name:    "two bytes",
			payload: "QUI=",
			want:    models.KeyFragments{Part3: "QUI="},
		},
		{
			name:    "three bytes",
			payload: "QUJD",
			want:    models.KeyFragments{Part1: "QQ==", Part2: "Qg==", Part3: "Qw=="},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := Split(tt.payload)
			require.NoError(t, err)
			assert.Equal(t, tt.want, parts)
		})
	}
}

func TestSplit_RemainderGoesToLastPart(t *testing.T) {
	raw := []byte("ABCDEFGHIJK") // 11 bytes: 3 + 3 + 5
	parts, err := Split(base64.StdEncoding.EncodeToString(raw))
	require.NoError(t, err)

	decode := func(s string) string {
		b, err := base64.StdEncoding.DecodeString(s)
		require.NoError(t, err)
		return string(b)
	}

	assert.Equal(t, "ABC", decode(parts.Part1))
	assert.Equal(t, "DEF", decode(parts.Part2))
	assert.Equal(t, "GHIJK", decode(parts.Part3))
}

func TestSplit_MalformedInput(t *testing.T) {
	for _, in := range []string{"not base64!", "QQ=", "QR==", "QUJD\n", "QU\r\nJD", "\nQUJD"} {
		_, err := Split(in)
		require.Error(t, err, "input %q", in)

		var fErr *FormatError
		assert.True(t, errors.As(err, &fErr), "input %q: want FormatError", in)
		assert.ErrorIs(t, err, ErrMalformedBase64)
	}
}

func TestJoin_MalformedPart(t *testing.T) {
	tests := []models.KeyFragments{
		{Part1: "%%%", Part2: "QQ==", Part3: "QQ=="},
		{Part1: "QQ==", Part2: "%%%", Part3: "QQ=="},
		{Part1: "QQ==", Part2: "QQ==", Part3: "%%%"},
		{Part1: "QQ==", Part2: "Qg==\n", Part3: "Qw=="},
	}

	for i, parts := range tests {
		_, err := Join(parts)
		require.Error(t, err, "case %d", i)

		var fErr *FormatError
		assert.ErrorAs(t, err, &fErr)
	}
}
