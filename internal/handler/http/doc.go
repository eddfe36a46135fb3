// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the operational HTTP API of the harness.
//
// It serves liveness and build information, the Prometheus exposition of
// the harness metrics, and read access to the stored stress run history.
// Request tracing, access logging and response compression are handled by
// middleware before requests reach the handlers.
package http
