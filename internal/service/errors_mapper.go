// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
)

// mapAdapterError names the failed lookup and the location in an adapter
// error. The adapter sentinel stays reachable through errors.Is.
func mapAdapterError(lookup, location string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return fmt.Errorf("failed to fetch %s for %q: %w", lookup, location, err)
}
