// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LocationHistoryEntry is a previously looked-up location.
type LocationHistoryEntry struct {
	Location   string
	LookedUpAt time.Time
	Lookups    int
}
