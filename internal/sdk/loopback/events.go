// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loopback

import (
	"sort"

	"github.com/MKhiriev/gameflow-harness/internal/dispatch"
	"github.com/MKhiriev/gameflow-harness/internal/sdk"
)

// outbox collects callbacks while the server lock is held. flush posts them
// once the lock is released.
type outbox []func()

func (o *outbox) post(d dispatch.Dispatcher, fn func()) {
	*o = append(*o, func() { d.Post(fn) })
}

func (o outbox) flush() {
	for _, f := range o {
		f()
	}
}

// handlerSet holds subscribers of one event type. Guarded by Server.mu.
type handlerSet[T any] struct {
	next int
	fns  map[int]func(T)
}

func (h *handlerSet[T]) add(fn func(T)) int {
	if h.fns == nil {
		h.fns = make(map[int]func(T))
	}
	h.next++
	h.fns[h.next] = fn
	return h.next
}

func (h *handlerSet[T]) remove(id int) {
	delete(h.fns, id)
}

func (h *handlerSet[T]) clear() {
	h.fns = nil
}

func (h *handlerSet[T]) snapshot() []func(T) {
	ids := make([]int, 0, len(h.fns))
	for id := range h.fns {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	fns := make([]func(T), len(ids))
	for i, id := range ids {
		fns[i] = h.fns[id]
	}
	return fns
}

func subscribe[T any](s *Server, set *handlerSet[T], fn func(T)) *sdk.Subscription {
	s.mu.Lock()
	id := set.add(fn)
	s.mu.Unlock()

	return sdk.NewSubscription(func() {
		s.mu.Lock()
		set.remove(id)
		s.mu.Unlock()
	})
}

func emit[T any](out *outbox, d dispatch.Dispatcher, set *handlerSet[T], v T) {
	for _, fn := range set.snapshot() {
		out.post(d, func() { fn(v) })
	}
}
