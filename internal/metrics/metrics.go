// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes Prometheus collectors for stress runs and
// scenario results.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/gameflow-harness/models"
)

const namespace = "gameflow"

// Result label values.
const (
	resultSuccess = "success"
	resultFailure = "failure"
)

// Metrics owns a registry and the collectors registered on it.
type Metrics struct {
	registry *prometheus.Registry

	WorkerRuns        *prometheus.CounterVec
	WorkerDuration    *prometheus.HistogramVec
	Iterations        *prometheus.CounterVec
	StartupTime       *prometheus.HistogramVec
	ExecutionTime     *prometheus.HistogramVec
	SuccessRate       *prometheus.GaugeVec
	ScenarioResults   *prometheus.CounterVec
	ScenarioDuration  *prometheus.HistogramVec
	RunsPersistFailed prometheus.Counter
}

// New returns collectors registered on a fresh registry that also carries
// the Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,

		WorkerRuns: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "runs_total",
			Help:      "Total number of stress worker runs.",
		}, []string{"worker", "result"}),

		WorkerDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "duration_seconds",
			Help:      "Duration of successful worker runs in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~8s
		}, []string{"worker"}),

		Iterations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stress",
			Name:      "iterations_total",
			Help:      "Total number of completed stress iterations.",
		}, []string{"worker"}),

		StartupTime: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "stress",
			Name:      "startup_seconds",
			Help:      "Time spent starting the workers of one iteration.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14),
		}, []string{"worker"}),

		ExecutionTime: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "stress",
			Name:      "execution_seconds",
			Help:      "Time until every worker of one iteration finished.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
		}, []string{"worker"}),

		SuccessRate: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "stress",
			Name:      "success_ratio",
			Help:      "Success rate of the last iteration.",
		}, []string{"worker"}),

		ScenarioResults: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scenario",
			Name:      "results_total",
			Help:      "Total number of scenario runs by outcome.",
		}, []string{"scenario", "result"}),

		ScenarioDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "scenario",
			Name:      "duration_seconds",
			Help:      "Scenario duration in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 16),
		}, []string{"scenario"}),

		RunsPersistFailed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "persist_failures_total",
			Help:      "Run records that could not be stored.",
		}),
	}
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveWorker records one worker result. Durations of failed runs are
// not observed.
func (m *Metrics) ObserveWorker(worker string, r models.Result) {
	if !r.Success {
		m.WorkerRuns.WithLabelValues(worker, resultFailure).Inc()
		return
	}
	m.WorkerRuns.WithLabelValues(worker, resultSuccess).Inc()
	m.WorkerDuration.WithLabelValues(worker).Observe(r.Duration.Seconds())
}

// ObserveIteration records the timings and success rate of one iteration.
func (m *Metrics) ObserveIteration(worker string, startup, execution time.Duration, stats models.Stats) {
	m.Iterations.WithLabelValues(worker).Inc()
	m.StartupTime.WithLabelValues(worker).Observe(startup.Seconds())
	m.ExecutionTime.WithLabelValues(worker).Observe(execution.Seconds())
	m.SuccessRate.WithLabelValues(worker).Set(stats.SuccessRate)
}

// ObserveScenario records one scenario outcome.
func (m *Metrics) ObserveScenario(name string, succeeded bool, d time.Duration) {
	result := resultFailure
	if succeeded {
		result = resultSuccess
	}
	m.ScenarioResults.WithLabelValues(name, result).Inc()
	m.ScenarioDuration.WithLabelValues(name).Observe(d.Seconds())
}
