// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingWorker appends its name to a shared journal and optionally runs
// a hook, e.g. to cancel the surrounding context.
type recordingWorker struct {
	name    string
	journal *[]string
	after   func()
}

func (r *recordingWorker) Run(context.Context) {
	*r.journal = append(*r.journal, r.name)
	if r.after != nil {
		r.after()
	}
}

func TestWorkers_Run(t *testing.T) {
	tests := []struct {
		name        string
		names       []string
		cancelAfter string
		want        []string
	}{
		{name: "no workers", names: nil, want: nil},
		{name: "runs in declaration order", names: []string{"prune", "vacuum", "migrate"}, want: []string{"prune", "vacuum", "migrate"}},
		{name: "stops after cancellation", names: []string{"prune", "vacuum", "migrate"}, cancelAfter: "prune", want: []string{"prune"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			var journal []string
			ws := &Workers{}
			for _, n := range tt.names {
				w := &recordingWorker{name: n, journal: &journal}
				if n == tt.cancelAfter {
					w.after = cancel
				}
				ws.workers = append(ws.workers, w)
			}

			ws.Run(ctx)
			assert.Equal(t, tt.want, journal)
		})
	}
}

func TestWorkers_Run_CanceledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var journal []string
	ws := &Workers{workers: []Worker{&recordingWorker{name: "prune", journal: &journal}}}
	ws.Run(ctx)

	assert.Empty(t, journal)
}

func TestWorkers_Run_Repeatable(t *testing.T) {
	var journal []string
	ws := &Workers{workers: []Worker{&recordingWorker{name: "prune", journal: &journal}}}

	for range 3 {
		ws.Run(context.Background())
	}
	assert.Len(t, journal, 3)
}
