// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scenario

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/MKhiriev/gameflow-harness/internal/backend"
	"github.com/MKhiriev/gameflow-harness/internal/config"
	"github.com/MKhiriev/gameflow-harness/internal/dispatch"
	"github.com/MKhiriev/gameflow-harness/internal/logger"
	"github.com/MKhiriev/gameflow-harness/internal/sdk"
	"github.com/MKhiriev/gameflow-harness/internal/tracing"
	"github.com/MKhiriev/gameflow-harness/internal/utils"
)

// Runner runs scenarios, each on its own backend, dispatcher and client
// factory.
type Runner struct {
	backend  backend.Provisioner
	registry *Registry
	cfg      *config.StructuredConfig
	tracer   trace.Tracer

	logger *logger.Logger
}

// NewRunner returns a runner. A nil registry uses DefaultRegistry.
func NewRunner(b backend.Provisioner, registry *Registry, cfg *config.StructuredConfig, log *logger.Logger) *Runner {
	if registry == nil {
		registry = DefaultRegistry()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Runner{
		backend:  b,
		registry: registry,
		cfg:      cfg,
		tracer:   tracing.Tracer(),
		logger:   log,
	}
}

// WithTracer replaces the tracer taken from the global provider.
func (r *Runner) WithTracer(t trace.Tracer) *Runner {
	r.tracer = t
	return r
}

// Run runs the named scenarios in order; no names runs all of them. An
// unknown name fails before anything runs.
func (r *Runner) Run(ctx context.Context, names []string) ([]Result, error) {
	scenarios, err := r.registry.Select(names)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(scenarios))
	for _, s := range scenarios {
		if err = ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, r.RunOne(ctx, s))
	}
	return results, nil
}

// RunOne runs s and converts any failure into Succeeded=false.
func (r *Runner) RunOne(ctx context.Context, s Scenario) Result {
	ctx = utils.WithScenario(ctx, s.Name)
	ctx, span := r.tracer.Start(ctx, "scenario."+s.Name, trace.WithAttributes(tracing.AttrScenario.String(s.Name)))
	defer span.End()

	log := r.logger.WithField("scenario", s.Name)
	start := time.Now()

	err := r.run(ctx, s, log)

	res := Result{Name: s.Name, Succeeded: err == nil, Duration: time.Since(start), Err: err}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error().Err(err).Dur("duration", res.Duration).Msg("scenario failed")
	} else {
		span.SetStatus(codes.Ok, "")
		log.Info().Dur("duration", res.Duration).Msg("scenario succeeded")
	}
	return res
}

func (r *Runner) run(ctx context.Context, s Scenario, log *logger.Logger) (err error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Scenario.Timeout)
	defer cancel()

	target, err := r.backend.Provision(ctx, backend.Requirements{CCULimit: s.CCULimit})
	if err != nil {
		return fmt.Errorf("provision backend: %w", err)
	}
	defer func() {
		err = errors.Join(err, target.Close())
	}()

	d := dispatch.NewMainThreadDispatcher()
	factory := sdk.NewClientFactory(target.Driver, log)
	env := NewEnv(factory, d, target.Admin, r.cfg, log)
	defer func() {
		if closeErr := env.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("release clients")
		}
	}()

	h := Harness{Dispatcher: d, TimeSlice: r.cfg.Dispatch.TimeSlice, Idle: r.cfg.Dispatch.Idle}
	return h.Run(ctx, func(ctx context.Context) error {
		return s.Run(ctx, env)
	})
}

// Summary counts succeeded and failed results.
func Summary(results []Result) (succeeded, failed int) {
	for _, res := range results {
		if res.Succeeded {
			succeeded++
		} else {
			failed++
		}
	}
	return succeeded, failed
}
