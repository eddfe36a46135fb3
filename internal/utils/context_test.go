// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestScenarioFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), ScenarioCtxKey, 42)

	if _, ok := GetScenarioFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestScenarioFromContext(t *testing.T) {
	ctx := WithScenario(context.Background(), "kick")

	name, ok := GetScenarioFromContext(ctx)
	if !ok || name != "kick" {
		t.Fatalf("expected kick, got %q (ok=%v)", name, ok)
	}

	if _, ok = GetScenarioFromContext(context.Background()); ok {
		t.Fatal("expected ok=false on empty context")
	}
}
