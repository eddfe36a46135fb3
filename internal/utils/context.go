// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the harness:
// typed context keys, id generation, session tokens, HTTP response writing
// and the HTTP client wrapper.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// ScenarioCtxKey stores the name of the running scenario.
var ScenarioCtxKey = contextKey("scenario")

// WithScenario returns a copy of ctx carrying the scenario name.
func WithScenario(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, ScenarioCtxKey, name)
}

// GetScenarioFromContext returns the scenario name stored in ctx.
func GetScenarioFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(ScenarioCtxKey).(string)
	return name, ok
}
