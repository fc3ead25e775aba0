// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package format

const unknownIndex = "Unknown"

var usEPALabels = map[int]string{
	1: "Good",
	2: "Moderate",
	3: "Unhealthy for Sensitive Groups",
	4: "Unhealthy",
	5: "Very Unhealthy",
	6: "Hazardous",
}

// USEPALabel names a US-EPA index value (1-6).
func USEPALabel(index int) string {
	if label, ok := usEPALabels[index]; ok {
		return label
	}
	return unknownIndex
}

// DefraLabel names a UK DEFRA index value (1-10) by its band.
func DefraLabel(index int) string {
	switch {
	case index >= 1 && index <= 3:
		return "Low"
	case index >= 4 && index <= 6:
		return "Moderate"
	case index >= 7 && index <= 9:
		return "High"
	case index == 10:
		return "Very High"
	default:
		return unknownIndex
	}
}
