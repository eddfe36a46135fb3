// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package loopback is an in-process backend implementing [sdk.Driver].
//
// It mirrors the behavior of the test application the scenarios were written
// against: ephemeral authentication with an optional concurrent-user limit,
// parties with invitation codes, a quick-queue game finder, game sessions
// with a host, in-app notifications, peer configuration and a handful of
// test scenes. It also serves the administrative HTTP API (see
// [Server.AdminHandler]) so kick and broadcast requests travel over real HTTP.
//
// Every event is posted through the dispatcher of the receiving client's
// configuration, after the server lock has been released.
package loopback
