// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tracing

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestNewProvider_ExportsSpans(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var buf bytes.Buffer
	p, err := NewProvider("gameflow-test", "dev", &buf)
	require.NoError(t, err)

	ctx, span := StartSpan(context.Background(), "scenario.kick")
	span.SetAttributes(AttrScenario.String("kick"))
	AddEvent(ctx, "user kicked", AttrClientID.Int(1))
	RecordError(ctx, errors.New("boom"))
	span.End()

	require.NoError(t, p.Shutdown(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "scenario.kick")
	assert.Contains(t, out, "gameflow.scenario")
	assert.Contains(t, out, "user kicked")
	assert.Contains(t, out, "gameflow-test")
}

func TestTracer_NotNil(t *testing.T) {
	assert.NotNil(t, Tracer())
}
