// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package embedder

import "errors"

var (
	ErrSelfTestFailed = errors.New("embedded key self-test failed")
	ErrRenderFailed   = errors.New("failed to render embedded key source")
	ErrWriteFailed    = errors.New("failed to write embedded key source")
)
