// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package sdk describes the client-side contract of the multiplayer SDK the
// harness drives.
//
// A [ClientFactory] lazily creates one [Client] per numeric id from a
// [Configuration]. The configuration names the server endpoint, account and
// application, the plugins to install and the dispatcher callbacks are posted
// through. Each installed [Plugin] registers an API family (users, party,
// game finder, ...) in the client's [Resolver]; scenarios obtain them with
// [Resolve].
//
// The transport is reached through a [Driver]. The loopback package provides
// an in-process driver used by tests and by local runs.
package sdk
