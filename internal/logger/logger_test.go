// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log line: %q", buf.String())
	return entry
}

func TestNewLogger_EntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "keyembed")

	l.Debug().Str("location", "Paris").Msg("lookup")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "keyembed", entry["role"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "Paris", entry["location"])
	assert.Contains(t, entry, "time")

	fn, ok := entry[zerolog.CallerFieldName].(string)
	require.True(t, ok, "caller field missing")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Contains(t, fn, "TestNewLogger_EntryShape")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_WritesNothing(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("lookup failed")

	assert.Zero(t, buf.Len())
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	root := newLogger(&buf, "wait")

	tuiLog := root.Component("tui")
	require.NotSame(t, root, tuiLog)

	tuiLog.Info().Msg("screen changed")
	entry := decodeLine(t, &buf)
	assert.Equal(t, "wait", entry["role"])
	assert.Equal(t, "tui", entry[ComponentField])

	buf.Reset()
	root.Info().Msg("root line")
	assert.NotContains(t, decodeLine(t, &buf), ComponentField)
}

func TestContextRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		attach    bool
		wantLines int
	}{
		{name: "attached logger is returned", attach: true, wantLines: 1},
		{name: "bare context yields a usable logger", attach: false, wantLines: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := context.Background()
			if tt.attach {
				ctx = newLogger(&buf, "worker").WithContext(ctx)
			}

			l := FromContext(ctx)
			require.NotNil(t, l)
			l.Warn().Msg("history prune skipped")

			assert.Equal(t, tt.wantLines, bytes.Count(buf.Bytes(), []byte("\n")))
			if tt.attach {
				entry := decodeLine(t, &buf)
				assert.Equal(t, "worker", entry["role"])
				assert.Equal(t, "warn", entry["level"])
			}
		})
	}
}

func TestNewClientLogger(t *testing.T) {
	l := NewClientLogger("wait")
	require.NotNil(t, l)
	assert.NotEqual(t, zerolog.Disabled, l.GetLevel())
}
