// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package admission observes simulated clients going through the server's
// admission queue.
//
// A [Tracker] is ticked by a poll loop, typically a [time.Ticker] at the
// dispatcher idle interval. Each tick it inspects every agent's queue
// position and connection state, advances the agent's [State] and records
// the maximum number of concurrent connections and the deepest queue
// observed. It never drives the SDK except for invoking an agent's release
// function once its hold time elapsed.
package admission
