// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the harness' auxiliary HTTP listeners: the loopback
// admin API and the metrics endpoint.
//
// It provides listener setup, background serving and graceful shutdown.
package server
