// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"testing"
)

func TestDeriveKey_LengthAndDeterminism(t *testing.T) {
	k1 := DeriveKey()
	k2 := DeriveKey()

	if len(k1) != KeySize {
		t.Fatalf("key length = %d, want %d", len(k1), KeySize)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected identical keys for identical constants")
	}
}

func TestDeriveKey_ReturnsFreshSlice(t *testing.T) {
	k1 := DeriveKey()
	k1[0] ^= 0xFF

	k2 := DeriveKey()
	if bytes.Equal(k1, k2) {
		t.Fatalf("mutating a returned key must not affect later derivations")
	}
}
