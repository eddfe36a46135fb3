// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package dispatch provides action dispatchers used to run SDK callbacks on a
// goroutine chosen by the caller.
//
// A [MainThreadDispatcher] queues posted actions until the owning goroutine
// pumps it with [MainThreadDispatcher.Update] or [MainThreadDispatcher.Pump].
// This keeps all scenario callbacks on a single goroutine, so callbacks never
// race with each other. [Inline] runs actions immediately and is meant for
// stress workers that do not care where callbacks run.
package dispatch
