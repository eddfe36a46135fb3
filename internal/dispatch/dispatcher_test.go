// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dispatch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Inline ───────────────────────────────────────────────────────────────────

func TestInline_RunsImmediately(t *testing.T) {
	ran := false
	Inline{}.Post(func() { ran = true })
	assert.True(t, ran)
}

func TestInline_NilActionIgnored(t *testing.T) {
	assert.NotPanics(t, func() { Inline{}.Post(nil) })
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestUpdate_RunsInPostOrder(t *testing.T) {
	d := NewMainThreadDispatcher()
	var order []int
	for i := 1; i <= 3; i++ {
		d.Post(func() { order = append(order, i) })
	}

	n := d.Update(time.Second)

	assert.Equal(t, 3, n)
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Zero(t, d.Pending())
}

func TestUpdate_EmptyQueue(t *testing.T) {
	d := NewMainThreadDispatcher()
	assert.Zero(t, d.Update(time.Millisecond))
}

func TestUpdate_StopsWhenSliceElapsed(t *testing.T) {
	d := NewMainThreadDispatcher()
	clock := time.Unix(0, 0)
	d.now = func() time.Time { return clock }

	for range 5 {
		d.Post(func() { clock = clock.Add(3 * time.Millisecond) })
	}

	// 5ms slice: the first action moves the clock to 3ms, the second to 6ms.
	n := d.Update(5 * time.Millisecond)
	assert.Equal(t, 2, n)
	assert.Equal(t, 3, d.Pending())
}

func TestUpdate_ActionPostingActionRunsInSameUpdate(t *testing.T) {
	d := NewMainThreadDispatcher()
	second := false
	d.Post(func() {
		d.Post(func() { second = true })
	})

	n := d.Update(time.Second)
	assert.Equal(t, 2, n)
	assert.True(t, second)
}

func TestPost_IgnoresNil(t *testing.T) {
	d := NewMainThreadDispatcher()
	d.Post(nil)
	assert.Zero(t, d.Pending())
}

// ── Pump ─────────────────────────────────────────────────────────────────────

func TestPump_RunsActionsPostedFromOtherGoroutines(t *testing.T) {
	d := NewMainThreadDispatcher()
	done := make(chan struct{})

	var mu sync.Mutex
	count := 0
	go func() {
		for range 10 {
			d.Post(func() {
				mu.Lock()
				count++
				mu.Unlock()
			})
		}
		d.Post(func() { close(done) })
	}()

	err := d.Pump(context.Background(), done, time.Millisecond, time.Millisecond)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 10, count)
}

func TestPump_DrainsAfterDone(t *testing.T) {
	d := NewMainThreadDispatcher()
	done := make(chan struct{})
	late := false

	d.Post(func() {
		close(done)
		d.Post(func() { late = true })
	})

	require.NoError(t, d.Pump(context.Background(), done, time.Nanosecond, time.Millisecond))
	assert.True(t, late)
}

func TestPump_ReturnsContextError(t *testing.T) {
	d := NewMainThreadDispatcher()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := d.Pump(ctx, make(chan struct{}), time.Millisecond, time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
