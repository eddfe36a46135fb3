// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/gameflow-harness/internal/backend"
	"github.com/MKhiriev/gameflow-harness/internal/config"
	handler "github.com/MKhiriev/gameflow-harness/internal/handler/http"
	"github.com/MKhiriev/gameflow-harness/internal/logger"
	"github.com/MKhiriev/gameflow-harness/internal/metrics"
	"github.com/MKhiriev/gameflow-harness/internal/sdk"
	"github.com/MKhiriev/gameflow-harness/internal/server"
	"github.com/MKhiriev/gameflow-harness/internal/store"
	"github.com/MKhiriev/gameflow-harness/internal/stress"
	"github.com/MKhiriev/gameflow-harness/internal/tracing"
	"github.com/MKhiriev/gameflow-harness/internal/tui"
	"github.com/MKhiriev/gameflow-harness/internal/workers"
	"github.com/MKhiriev/gameflow-harness/models"
)

const shutdownTimeout = 5 * time.Second

var _ App = (*StressTool)(nil)

// StressTool runs one stress run as configured by cfg.Stress.
type StressTool struct {
	cfg         *config.StructuredConfig
	buildInfo   models.AppBuildInfo
	backend     backend.Provisioner
	traceOutput io.Writer

	// records holds the iterations of the last Run.
	records []models.RunRecord
	addr    string

	logger *logger.Logger
}

// NewStressTool returns a stress tool. Spans are written to traceOutput when
// tracing is enabled.
func NewStressTool(cfg *config.StructuredConfig, b backend.Provisioner, buildInfo models.AppBuildInfo, traceOutput io.Writer, log *logger.Logger) *StressTool {
	if log == nil {
		log = logger.Nop()
	}
	if traceOutput == nil {
		traceOutput = io.Discard
	}
	return &StressTool{
		cfg:         cfg,
		buildInfo:   buildInfo,
		backend:     b,
		traceOutput: traceOutput,
		logger:      log,
	}
}

// Records returns the iterations completed by the last Run.
func (a *StressTool) Records() []models.RunRecord {
	return a.records
}

// Addr returns the address the API server listened on during the last Run,
// or "" when it was disabled.
func (a *StressTool) Addr() string {
	return a.addr
}

// Run implements [App].
func (a *StressTool) Run(ctx context.Context) (err error) {
	if a.cfg.Tracing.Enabled {
		provider, tracingErr := tracing.NewProvider(a.cfg.Tracing.ServiceName, a.buildInfo.BuildVersion(), a.traceOutput)
		if tracingErr != nil {
			return tracingErr
		}
		defer a.shutdown("tracing", provider.Shutdown)
	}

	m := metrics.New()

	var runs store.RunRepository
	if a.cfg.Storage.DB.DSN != "" {
		storages, openErr := store.NewStorages(ctx, a.cfg.Storage.DB, a.logger)
		if openErr != nil {
			return fmt.Errorf("open run history: %w", openErr)
		}
		defer func() {
			err = errors.Join(err, storages.Close())
		}()
		runs = storages.RunRepository
	}

	if addr := a.cfg.Metrics.Address; addr != "" {
		h := handler.NewHandler(runs, m, a.buildInfo, a.logger)
		httpSrv, listenErr := server.NewHTTPServer(ctx, "stresstool-api", addr, h.Init(), a.logger)
		if listenErr != nil {
			return listenErr
		}
		httpSrv.Start()
		a.addr = httpSrv.Addr()
		defer a.shutdown("api", httpSrv.Shutdown)
	}

	target, err := a.backend.Provision(ctx, backend.Requirements{})
	if err != nil {
		return fmt.Errorf("provision backend: %w", err)
	}
	defer func() {
		err = errors.Join(err, target.Close())
	}()

	factory := sdk.NewClientFactory(target.Driver, a.logger)
	defer func() {
		if releaseErr := factory.ReleaseAll(); releaseErr != nil {
			a.logger.Warn().Err(releaseErr).Msg("release clients")
		}
	}()

	worker, err := workers.NewWorkers(factory, a.cfg, a.logger).Get(a.cfg.Stress.Worker)
	if err != nil {
		return err
	}

	opts := []stress.Option{stress.WithMetrics(m)}
	if runs != nil {
		opts = append(opts, stress.WithStore(runs))
	}

	if !a.cfg.Stress.Dashboard {
		runner := stress.NewRunner(worker, a.cfg.Stress, a.logger, opts...)
		a.records, err = runner.Run(ctx)
		a.summarize(runner.RunID())
		return err
	}
	return a.runWithDashboard(ctx, worker, opts)
}

// runWithDashboard runs the stress runner in the background while the
// dashboard renders its progress. Closing the dashboard cancels the run.
func (a *StressTool) runWithDashboard(ctx context.Context, worker workers.Worker, opts []stress.Option) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	progress := make(chan stress.Progress)
	done := make(chan error, 1)
	runner := stress.NewRunner(worker, a.cfg.Stress, a.logger, append(opts, stress.WithProgress(progress))...)

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		records, err := runner.Run(ctx)
		a.records = records
		close(progress)
		done <- err
	}()

	uiErr := tui.New(a.buildInfo, a.logger).Dashboard(ctx, runner.RunID(), a.cfg.Stress, progress, done)
	cancel()
	<-finished
	a.summarize(runner.RunID())

	if errors.Is(uiErr, tui.ErrUserQuit) {
		return nil
	}
	return uiErr
}

func (a *StressTool) summarize(runID string) {
	var total, succeeded int
	for _, rec := range a.records {
		total += rec.Stats.Total
		succeeded += rec.Stats.Succeeded
	}
	a.logger.Info().
		Str("run_id", runID).
		Str("worker", a.cfg.Stress.Worker).
		Int("iterations", len(a.records)).
		Int("total", total).
		Int("succeeded", succeeded).
		Msg("stress run finished")
}

func (a *StressTool) shutdown(name string, fn func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := fn(ctx); err != nil {
		a.logger.Warn().Err(err).Str("component", name).Msg("shutdown")
	}
}
