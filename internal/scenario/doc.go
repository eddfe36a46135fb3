// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package scenario holds the scripted integration scenarios that exercise the
// SDK game flow against a server: authentication, parties, matchmaking, game
// sessions, notifications, peer configuration, scenes, server to client
// requests and the admission queue.
//
// Every scenario runs on a fresh [Env]: its own main-thread dispatcher, client
// factory and backend. The [Harness] starts the scenario body as a task and
// pumps the dispatcher until the task completes, so SDK callbacks execute on
// the pumping goroutine while the body blocks on SDK calls and events.
//
// [Runner] resolves scenarios by name from a [Registry], traces and logs
// each one and reports a [Result].
package scenario
