// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/gameflow-harness/internal/backend"
	"github.com/MKhiriev/gameflow-harness/internal/config"
	"github.com/MKhiriev/gameflow-harness/internal/logger"
	"github.com/MKhiriev/gameflow-harness/internal/metrics"
	"github.com/MKhiriev/gameflow-harness/internal/scenario"
	"github.com/MKhiriev/gameflow-harness/internal/tracing"
	"github.com/MKhiriev/gameflow-harness/models"
)

var _ App = (*SDKCheck)(nil)

// SDKCheck runs the integration scenarios named by cfg.Scenario.Names.
type SDKCheck struct {
	cfg         *config.StructuredConfig
	buildInfo   models.AppBuildInfo
	backend     backend.Provisioner
	registry    *scenario.Registry
	metrics     *metrics.Metrics
	traceOutput io.Writer

	results []scenario.Result

	logger *logger.Logger
}

// NewSDKCheck returns a scenario checker. A nil registry runs the default
// scenarios.
func NewSDKCheck(cfg *config.StructuredConfig, b backend.Provisioner, registry *scenario.Registry, buildInfo models.AppBuildInfo, traceOutput io.Writer, log *logger.Logger) *SDKCheck {
	if log == nil {
		log = logger.Nop()
	}
	if traceOutput == nil {
		traceOutput = io.Discard
	}
	return &SDKCheck{
		cfg:         cfg,
		buildInfo:   buildInfo,
		backend:     b,
		registry:    registry,
		metrics:     metrics.New(),
		traceOutput: traceOutput,
		logger:      log,
	}
}

// Results returns the results of the last Run.
func (a *SDKCheck) Results() []scenario.Result {
	return a.results
}

// Metrics returns the collectors updated by Run.
func (a *SDKCheck) Metrics() *metrics.Metrics {
	return a.metrics
}

// Run implements [App]. It returns ErrScenariosFailed when any scenario
// failed.
func (a *SDKCheck) Run(ctx context.Context) error {
	if a.cfg.Tracing.Enabled {
		provider, err := tracing.NewProvider(a.cfg.Tracing.ServiceName, a.buildInfo.BuildVersion(), a.traceOutput)
		if err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := provider.Shutdown(ctx); err != nil {
				a.logger.Warn().Err(err).Msg("shutdown tracing")
			}
		}()
	}

	runner := scenario.NewRunner(a.backend, a.registry, a.cfg, a.logger)
	results, err := runner.Run(ctx, a.cfg.Scenario.Names)
	a.results = results
	for _, res := range results {
		a.metrics.ObserveScenario(res.Name, res.Succeeded, res.Duration)
	}
	if err != nil {
		return err
	}

	succeeded, failed := scenario.Summary(results)
	a.logger.Info().Int("succeeded", succeeded).Int("failed", failed).Msg("scenarios finished")
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrScenariosFailed, failed, len(results))
	}
	return nil
}
