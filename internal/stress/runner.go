// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package stress runs a worker many times in parallel and reports timing
// statistics per iteration.
package stress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/MKhiriev/gameflow-harness/internal/config"
	"github.com/MKhiriev/gameflow-harness/internal/logger"
	"github.com/MKhiriev/gameflow-harness/internal/metrics"
	"github.com/MKhiriev/gameflow-harness/internal/store"
	"github.com/MKhiriev/gameflow-harness/internal/tracing"
	"github.com/MKhiriev/gameflow-harness/internal/utils"
	"github.com/MKhiriev/gameflow-harness/internal/workers"
	"github.com/MKhiriev/gameflow-harness/models"
)

var ErrNoWorkers = errors.New("concurrent workers must be positive")

// Progress is emitted after every iteration.
type Progress struct {
	Iterations int
	Record     models.RunRecord
	Results    []models.Result
}

// Runner runs Iterations iterations of ConcurrentWorkers parallel workers.
type Runner struct {
	worker workers.Worker
	cfg    config.Stress
	runID  string

	runs     store.RunRepository
	metrics  *metrics.Metrics
	progress chan<- Progress
	tracer   trace.Tracer

	logger *logger.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithStore persists a record per iteration.
func WithStore(runs store.RunRepository) Option {
	return func(r *Runner) { r.runs = runs }
}

// WithMetrics records worker and iteration metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithProgress sends a Progress after every iteration. Sends block until
// received or the run context ends.
func WithProgress(ch chan<- Progress) Option {
	return func(r *Runner) { r.progress = ch }
}

// WithRunID replaces the generated run id.
func WithRunID(id string) Option {
	return func(r *Runner) { r.runID = id }
}

// NewRunner returns a runner of w configured by cfg.
func NewRunner(w workers.Worker, cfg config.Stress, log *logger.Logger, opts ...Option) *Runner {
	if log == nil {
		log = logger.Nop()
	}
	r := &Runner{
		worker: w,
		cfg:    cfg,
		runID:  utils.NewUUIDGenerator().Generate(),
		tracer: tracing.Tracer(),
		logger: log,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.WithField("run_id", r.runID)
	return r
}

// RunID identifies the records of this runner.
func (r *Runner) RunID() string {
	return r.runID
}

// Run runs every iteration and returns their records. When ctx ends the
// records completed so far are returned with ctx's error.
func (r *Runner) Run(ctx context.Context) ([]models.RunRecord, error) {
	if r.cfg.ConcurrentWorkers <= 0 {
		return nil, ErrNoWorkers
	}

	records := make([]models.RunRecord, 0, r.cfg.Iterations)
	for i := range r.cfg.Iterations {
		rec, err := r.RunIteration(ctx, i)
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// RunIteration starts ConcurrentWorkers workers with ids 0..n-1 and waits
// for all of them. Startup time covers launching the workers, including
// any ramp-up wait; execution time runs from then until the last worker
// finished.
func (r *Runner) RunIteration(ctx context.Context, iteration int) (models.RunRecord, error) {
	ctx, span := r.tracer.Start(ctx, "stress.iteration", trace.WithAttributes(
		tracing.AttrRunID.String(r.runID),
		tracing.AttrWorker.String(r.cfg.Worker),
		tracing.AttrIteration.Int(iteration),
	))
	defer span.End()

	n := r.cfg.ConcurrentWorkers
	results := make([]models.Result, n)

	var limiter *rate.Limiter
	if r.cfg.RampUp > 0 {
		limiter = rate.NewLimiter(rate.Limit(r.cfg.RampUp), 1)
	}

	var g errgroup.Group
	start := time.Now()
	for id := range n {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				_ = g.Wait()
				span.RecordError(err)
				return models.RunRecord{}, fmt.Errorf("ramp up: %w", err)
			}
		}
		g.Go(func() error {
			results[id] = r.runWorker(ctx, id)
			return nil
		})
	}
	startup := time.Since(start)

	execStart := time.Now()
	_ = g.Wait()
	execution := time.Since(execStart)

	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		return models.RunRecord{}, err
	}

	rec := models.RunRecord{
		RunID:             r.runID,
		Worker:            r.cfg.Worker,
		Iteration:         iteration,
		ConcurrentWorkers: n,
		StartupTime:       startup,
		ExecutionTime:     execution,
		Stats:             Compute(results),
		CreatedAt:         time.Now().UTC(),
	}
	r.report(rec)
	r.record(ctx, &rec, results)

	if r.progress != nil {
		select {
		case r.progress <- Progress{Iterations: r.cfg.Iterations, Record: rec, Results: results}:
		case <-ctx.Done():
			return rec, ctx.Err()
		}
	}
	return rec, nil
}

func (r *Runner) runWorker(ctx context.Context, id int) models.Result {
	if r.cfg.WorkerTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.WorkerTimeout)
		defer cancel()
	}
	res := r.worker.Run(ctx, id)
	res.WorkerID = id
	return res
}

func (r *Runner) report(rec models.RunRecord) {
	r.logger.Info().
		Int("iteration", rec.Iteration).
		Dur("startup_time", rec.StartupTime).
		Dur("execution_time", rec.ExecutionTime).
		Float64("success_rate", rec.Stats.SuccessRate*100).
		Dur("avg", rec.Stats.Avg).
		Dur("min", rec.Stats.Min).
		Dur("max", rec.Stats.Max).
		Msg("iteration completed")
}

// record stores rec and observes metrics. A failed insert is logged and
// counted but does not fail the iteration.
func (r *Runner) record(ctx context.Context, rec *models.RunRecord, results []models.Result) {
	if r.metrics != nil {
		for _, res := range results {
			r.metrics.ObserveWorker(r.cfg.Worker, res)
		}
		r.metrics.ObserveIteration(r.cfg.Worker, rec.StartupTime, rec.ExecutionTime, rec.Stats)
	}

	if r.runs == nil {
		return
	}
	id, err := r.runs.SaveRun(ctx, *rec)
	if err != nil {
		r.logger.Warn().Err(err).Int("iteration", rec.Iteration).Msg("could not store run record")
		if r.metrics != nil {
			r.metrics.RunsPersistFailed.Inc()
		}
		return
	}
	rec.ID = id
}
