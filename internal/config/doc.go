// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation for
// the stresstool and sdkcheck binaries.
//
// Configuration is assembled from multiple sources. For every field the first
// source that sets a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (-c / -config / CONFIG)
//  4. Built-in defaults
//
// The entry point is [GetStructuredConfig].
package config
