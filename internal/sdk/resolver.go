// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sdk

import (
	"fmt"
	"reflect"
	"sync"
)

// Resolver is the per-client dependency container. Entries are keyed by the
// static type they were registered as.
type Resolver struct {
	mu      sync.RWMutex
	entries map[reflect.Type]any
}

func NewResolver() *Resolver {
	return &Resolver{entries: make(map[reflect.Type]any)}
}

// Register stores v under type T, replacing any previous entry.
func Register[T any](r *Resolver, v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[reflect.TypeFor[T]()] = v
}

// Lookup returns the entry registered under T.
func Lookup[T any](r *Resolver) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t := reflect.TypeFor[T]()
	v, ok := r.entries[t]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrNotRegistered, t)
	}
	return v.(T), nil
}

// Resolve returns the API of type T installed on client c.
func Resolve[T any](c *Client) (T, error) {
	if c.Released() {
		var zero T
		return zero, ErrClientReleased
	}
	return Lookup[T](c.resolver)
}

// MustResolve is Resolve that panics on error. Use it only where the plugin
// set is known statically.
func MustResolve[T any](c *Client) T {
	v, err := Resolve[T](c)
	if err != nil {
		panic(err)
	}
	return v
}
