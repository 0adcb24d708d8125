package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerStoreRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "qrl_ledger_store",
		Name:      "operations_total",
		Help:      "Count of ledger store reads.",
	}, []string{"operation", "status"})
	ledgerStoreRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "qrl_ledger_store",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger store reads.",
		Buckets:   []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"operation", "status"})
)

// LedgerStore tracks metrics for reads against the ledger key-value store.
type LedgerStore struct{}

// NewLedgerStore constructs a metrics collector for ledger reads.
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{}
}

// Observe records a single read outcome and duration.
func (m LedgerStore) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	ledgerStoreRequestsTotal.WithLabelValues(operation, status).Inc()
	ledgerStoreRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
