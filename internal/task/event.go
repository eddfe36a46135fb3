// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package task

import (
	"context"
	"errors"
)

// Event is a completion event without a value. Subscribers call Set from a
// callback, the scenario waits on Task.
type Event struct {
	t *Task[struct{}]
	c Completer[struct{}]
}

// NewEvent creates an unset event.
func NewEvent() *Event {
	t, c := New[struct{}]()
	return &Event{t: t, c: c}
}

// Set completes the event. Further calls are no-ops.
func (e *Event) Set() {
	e.c.Complete(struct{}{})
}

// SetError fails the event.
func (e *Event) SetError(err error) {
	e.c.Fail(err)
}

// Task returns the task that completes with the event.
func (e *Event) Task() *Task[struct{}] {
	return e.t
}

// Wait blocks until the event is set or ctx ends.
func (e *Event) Wait(ctx context.Context) error {
	_, err := e.t.Await(ctx)
	return err
}

// WhenAll completes once every task has settled. Its value holds the values
// in task order; its error joins every failure.
func WhenAll[T any](tasks ...*Task[T]) *Task[[]T] {
	all, c := New[[]T]()
	go func() {
		values := make([]T, len(tasks))
		var errs []error
		for i, t := range tasks {
			<-t.Done()
			v, err := t.Result()
			if err != nil {
				errs = append(errs, err)
				continue
			}
			values[i] = v
		}
		c.Settle(values, errors.Join(errs...))
	}()
	return all
}
