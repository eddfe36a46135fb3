// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import "context"

// App defines the lifecycle contract for runnable harness applications.
type App interface {
	// Run starts the application and blocks until it finished or ctx ends.
	Run(ctx context.Context) error
}
