// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app implements the process lifecycle of the harness binaries.
//
// StressTool wires the backend, the SDK client factory, a worker, the run
// history store, the metrics endpoint and the optional dashboard into one
// stress run. SDKCheck runs the integration scenarios and reports a summary.
package app
