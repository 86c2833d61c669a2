package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the MPC module
type Metrics struct {
	// Computation lifecycle metrics
	ComputationsQueued   *prometheus.CounterVec
	ComputationsResolved *prometheus.CounterVec
	ComputationsAborted  *prometheus.CounterVec
	PendingComputations  prometheus.Gauge

	// Definition metrics
	CompDefsInitialized prometheus.Counter

	// Security metrics
	CallbacksRejected *prometheus.CounterVec
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// NewMetrics creates and registers MPC metrics (singleton pattern)
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = &Metrics{
			ComputationsQueued: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "climemate",
					Subsystem: "mpc",
					Name:      "computations_queued_total",
					Help:      "Total computations queued",
				},
				[]string{"kind"},
			),
			ComputationsResolved: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "climemate",
					Subsystem: "mpc",
					Name:      "computations_resolved_total",
					Help:      "Total computations resolved successfully",
				},
				[]string{"kind"},
			),
			ComputationsAborted: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "climemate",
					Subsystem: "mpc",
					Name:      "computations_aborted_total",
					Help:      "Total computations aborted by the executor cluster",
				},
				[]string{"kind"},
			),
			PendingComputations: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "climemate",
					Subsystem: "mpc",
					Name:      "pending_computations",
					Help:      "Computations currently awaiting a callback",
				},
			),
			CompDefsInitialized: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "climemate",
					Subsystem: "mpc",
					Name:      "comp_defs_initialized_total",
					Help:      "Computation definition initialization events",
				},
			),
			CallbacksRejected: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "climemate",
					Subsystem: "mpc",
					Name:      "callbacks_rejected_total",
					Help:      "Callbacks refused before touching state",
				},
				[]string{"reason"},
			),
		}
	})
	return metrics
}
