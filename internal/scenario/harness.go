// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scenario

import (
	"context"
	"time"

	"github.com/MKhiriev/gameflow-harness/internal/dispatch"
	"github.com/MKhiriev/gameflow-harness/internal/task"
)

// Harness pumps a main-thread dispatcher while a scenario body runs.
type Harness struct {
	Dispatcher *dispatch.MainThreadDispatcher
	TimeSlice  time.Duration
	Idle       time.Duration
}

// Run executes fn as a task and pumps the dispatcher on the calling goroutine
// until the task completes or ctx ends. It returns fn's error.
func (h Harness) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	slice, idle := h.TimeSlice, h.Idle
	if slice <= 0 {
		slice = dispatch.DefaultTimeSlice
	}
	if idle <= 0 {
		idle = dispatch.DefaultIdle
	}

	t := task.Go(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})

	if err := h.Dispatcher.Pump(ctx, t.Done(), slice, idle); err != nil {
		return err
	}
	_, err := t.Result()
	return err
}
