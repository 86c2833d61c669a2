package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the escrow module
type Metrics struct {
	EscrowsInitialized prometheus.Counter
	TokensSold         *prometheus.CounterVec
	PurchaseCount      *prometheus.CounterVec
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// NewMetrics creates and registers escrow metrics (singleton pattern)
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = &Metrics{
			EscrowsInitialized: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "climemate",
					Subsystem: "escrow",
					Name:      "escrows_initialized_total",
					Help:      "Escrow ledger initialization events",
				},
			),
			TokensSold: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "climemate",
					Subsystem: "escrow",
					Name:      "tokens_sold_total",
					Help:      "Total tokens sold through escrows",
				},
				[]string{"denom"},
			),
			PurchaseCount: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "climemate",
					Subsystem: "escrow",
					Name:      "purchases_total",
					Help:      "Total purchase transactions",
				},
				[]string{"denom"},
			),
		}
	})
	return metrics
}
