// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dispatch

import (
	"context"
	"sync"
	"time"
)

const (
	// DefaultTimeSlice bounds a single Update call.
	DefaultTimeSlice = 5 * time.Millisecond
	// DefaultIdle is how long Pump waits between two Update calls when
	// nothing was posted.
	DefaultIdle = 10 * time.Millisecond
)

// Dispatcher receives actions to run.
type Dispatcher interface {
	Post(action func())
}

// Inline runs every posted action synchronously on the posting goroutine.
type Inline struct{}

// Post implements [Dispatcher].
func (Inline) Post(action func()) {
	if action != nil {
		action()
	}
}

// MainThreadDispatcher queues actions until the owner runs them.
type MainThreadDispatcher struct {
	mu     sync.Mutex
	queue  []func()
	notify chan struct{}
	now    func() time.Time
}

// NewMainThreadDispatcher creates an empty dispatcher.
func NewMainThreadDispatcher() *MainThreadDispatcher {
	return &MainThreadDispatcher{
		notify: make(chan struct{}, 1),
		now:    time.Now,
	}
}

// Post implements [Dispatcher]. It is safe to call from any goroutine,
// including from an action that is being run by Update.
func (d *MainThreadDispatcher) Post(action func()) {
	if action == nil {
		return
	}

	d.mu.Lock()
	d.queue = append(d.queue, action)
	d.mu.Unlock()

	select {
	case d.notify <- struct{}{}:
	default:
	}
}

// Pending returns the number of queued actions.
func (d *MainThreadDispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queue)
}

// Update runs queued actions on the calling goroutine until the queue is
// empty or slice has elapsed. At least one action runs when any is queued.
// It returns the number of actions executed.
func (d *MainThreadDispatcher) Update(slice time.Duration) int {
	if slice <= 0 {
		slice = DefaultTimeSlice
	}
	deadline := d.now().Add(slice)

	executed := 0
	for {
		action, ok := d.pop()
		if !ok {
			return executed
		}
		action()
		executed++

		if !d.now().Before(deadline) {
			return executed
		}
	}
}

// Pump updates the dispatcher until done is closed or ctx ends. Between two
// updates it sleeps for idle, waking up early when an action is posted.
// When done closes, the queue is drained once more so callbacks posted just
// before completion still run.
func (d *MainThreadDispatcher) Pump(ctx context.Context, done <-chan struct{}, slice, idle time.Duration) error {
	if idle <= 0 {
		idle = DefaultIdle
	}

	timer := time.NewTimer(idle)
	defer timer.Stop()

	for {
		d.Update(slice)

		select {
		case <-done:
			d.drain(slice)
			return nil
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(idle)

		select {
		case <-done:
			d.drain(slice)
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case <-d.notify:
		case <-timer.C:
		}
	}
}

func (d *MainThreadDispatcher) drain(slice time.Duration) {
	for d.Pending() > 0 {
		d.Update(slice)
	}
}

func (d *MainThreadDispatcher) pop() (func(), bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.queue) == 0 {
		return nil, false
	}
	action := d.queue[0]
	d.queue[0] = nil
	d.queue = d.queue[1:]
	return action, true
}
