// SPDX-License-Identifier: MIT

package observe

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvlath-paths/shortest"
)

// Prometheus records every finished run.
//
// Metrics (namespace "lvlath_paths"):
//
//  1. runs_total (counter): runs by algorithm and outcome (ok/error).
//  2. settled_nodes (histogram): nodes settled per run, by algorithm.
//  3. relaxations_total (counter): edges examined, by algorithm.
//  4. run_duration_seconds (histogram): wall time per run, by algorithm.
type Prometheus struct {
	runs        *prometheus.CounterVec
	settled     *prometheus.HistogramVec
	relaxations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

var _ shortest.Observer = (*Prometheus)(nil)

// NewPrometheus creates and registers the metrics with registry. A nil registry
// means prometheus.DefaultRegisterer. Registering twice on the same registry
// panics, as with any promauto collector.
func NewPrometheus(registry prometheus.Registerer) *Prometheus {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Prometheus{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvlath_paths",
			Name:      "runs_total",
			Help:      "Shortest-path runs by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
		settled: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lvlath_paths",
			Name:      "settled_nodes",
			Help:      "Nodes settled per run.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
		}, []string{"algorithm"}),
		relaxations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvlath_paths",
			Name:      "relaxations_total",
			Help:      "Edges examined during relaxation.",
		}, []string{"algorithm"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lvlath_paths",
			Name:      "run_duration_seconds",
			Help:      "Wall time per run.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~0.8s
		}, []string{"algorithm"}),
	}
}

// Start does nothing; everything is recorded at Finish.
func (p *Prometheus) Start(ctx context.Context, _ string) context.Context { return ctx }

// Finish records stats.
func (p *Prometheus) Finish(_ context.Context, stats shortest.Stats) {
	p.runs.WithLabelValues(stats.Algorithm, outcomeOf(stats.Err)).Inc()
	p.settled.WithLabelValues(stats.Algorithm).Observe(float64(stats.Settled))
	p.relaxations.WithLabelValues(stats.Algorithm).Add(float64(stats.Relaxed))
	p.duration.WithLabelValues(stats.Algorithm).Observe(stats.Duration.Seconds())
}
