// Package metrics exposes pipeline timings as Prometheus metrics.
package metrics

import (
	"context"

	"github.com/aretw0/memtree-bench/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector owns a private registry with the harness metrics.
type Collector struct {
	registry      *prometheus.Registry
	stageDuration *prometheus.HistogramVec
	stageRuns     *prometheus.CounterVec
	nodes         *prometheus.GaugeVec
}

// New creates a collector with its metrics registered.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		stageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "memtree_bench_stage_duration_seconds",
				Help: "Wall-clock duration of pipeline stages",
				// Training on the full corpus takes hours.
				Buckets: prometheus.ExponentialBuckets(0.5, 4, 10),
			},
			[]string{"experiment", "stage"},
		),
		stageRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "memtree_bench_stage_runs_total",
				Help: "Completed pipeline stages by outcome",
			},
			[]string{"experiment", "stage", "outcome"},
		),
		nodes: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "memtree_bench_memory_tree_nodes",
				Help: "Memory tree size passed to the trainer",
			},
			[]string{"experiment"},
		),
	}
	c.registry.MustRegister(c.stageDuration, c.stageRuns, c.nodes)
	return c
}

// Registry returns the registry backing the collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ObserveNodes records the memory tree size of a run.
func (c *Collector) ObserveNodes(experiment string, nodes int) {
	c.nodes.WithLabelValues(experiment).Set(float64(nodes))
}

// Hooks returns lifecycle hooks that record every finished stage.
func (c *Collector) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStageEnd: func(_ context.Context, e *domain.StageEvent) {
			outcome := "ok"
			if e.Err != nil {
				outcome = "error"
			} else {
				c.stageDuration.WithLabelValues(e.Experiment, string(e.Stage)).Observe(e.Timing.Seconds())
			}
			c.stageRuns.WithLabelValues(e.Experiment, string(e.Stage), outcome).Inc()
		},
	}
}

// Chain combines hooks so each callback runs in order.
func Chain(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStageStart: func(ctx context.Context, e *domain.StageEvent) {
			for _, h := range hooks {
				if h.OnStageStart != nil {
					h.OnStageStart(ctx, e)
				}
			}
		},
		OnStageEnd: func(ctx context.Context, e *domain.StageEvent) {
			for _, h := range hooks {
				if h.OnStageEnd != nil {
					h.OnStageEnd(ctx, e)
				}
			}
		},
	}
}
