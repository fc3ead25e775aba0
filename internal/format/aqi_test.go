// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUSEPALabel(t *testing.T) {
	want := map[int]string{
		0: "Unknown",
		1: "Good",
		2: "Moderate",
		3: "Unhealthy for Sensitive Groups",
		4: "Unhealthy",
		5: "Very Unhealthy",
		6: "Hazardous",
		7: "Unknown",
	}
	for index, label := range want {
		assert.Equal(t, label, USEPALabel(index), "index %d", index)
	}
}

func TestDefraLabel(t *testing.T) {
	want := map[int]string{
		0: "Unknown", 1: "Low", 3: "Low",
		4: "Moderate", 6: "Moderate",
		7: "High", 9: "High",
		10: "Very High", 11: "Unknown",
	}
	for index, label := range want {
		assert.Equal(t, label, DefraLabel(index), "index %d", index)
	}
}
