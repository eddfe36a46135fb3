// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package task provides a minimal future type used to model the SDK's
// asynchronous operations.
//
// A [Task] completes exactly once, either with a value or with an error.
// Callers wait for it with [Task.Await] or select on [Task.Done] while they
// keep pumping a dispatcher.
package task

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrNotCompleted is returned by Result while the task is still pending.
	ErrNotCompleted = errors.New("task not completed")
	// ErrPanic wraps a panic recovered from a function started with Go.
	ErrPanic = errors.New("task panicked")
)

// Task is the read side of an asynchronous operation.
type Task[T any] struct {
	done  chan struct{}
	once  sync.Once
	value T
	err   error
}

// Completer is the write side of a [Task].
type Completer[T any] struct {
	t *Task[T]
}

// New creates a pending task and the completer that settles it.
func New[T any]() (*Task[T], Completer[T]) {
	t := &Task[T]{done: make(chan struct{})}
	return t, Completer[T]{t: t}
}

// FromResult returns an already completed task.
func FromResult[T any](v T) *Task[T] {
	t, c := New[T]()
	c.Complete(v)
	return t
}

// FromError returns an already failed task.
func FromError[T any](err error) *Task[T] {
	t, c := New[T]()
	c.Fail(err)
	return t
}

// Go runs fn on its own goroutine and returns a task settled with its result.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Task[T] {
	t, c := New[T]()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				c.Fail(fmt.Errorf("%w: %v", ErrPanic, r))
			}
		}()
		v, err := fn(ctx)
		c.Settle(v, err)
	}()
	return t
}

// Complete settles the task with v. It reports false when the task was
// already settled.
func (c Completer[T]) Complete(v T) bool {
	return c.Settle(v, nil)
}

// Fail settles the task with err. It reports false when the task was
// already settled.
func (c Completer[T]) Fail(err error) bool {
	var zero T
	return c.Settle(zero, err)
}

// Settle completes the task with v when err is nil, and fails it otherwise.
func (c Completer[T]) Settle(v T, err error) bool {
	settled := false
	c.t.once.Do(func() {
		if err != nil {
			c.t.err = err
		} else {
			c.t.value = v
		}
		close(c.t.done)
		settled = true
	})
	return settled
}

// Done is closed once the task is settled.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// IsDone reports whether the task is settled.
func (t *Task[T]) IsDone() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Result returns the outcome without blocking.
func (t *Task[T]) Result() (T, error) {
	if !t.IsDone() {
		var zero T
		return zero, ErrNotCompleted
	}
	return t.value, t.err
}

// Await blocks until the task settles or ctx ends.
func (t *Task[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.value, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
