package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	repositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "qrl_repository",
		Name:      "operations_total",
		Help:      "Count of sink repository operations.",
	}, []string{"operation", "sink", "status"})
	repositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "qrl_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of sink repository operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "sink", "status"})
)

// Repository tracks metrics for sink repository operations.
type Repository struct{}

// NewRepository creates a Repository metrics collector.
func NewRepository() *Repository {
	return &Repository{}
}

// Observe records duration and status of a repository operation.
func (m Repository) Observe(operation, sink string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	if sink == "" {
		sink = "unknown"
	}

	repositoryRequestsTotal.WithLabelValues(operation, sink, status).Inc()
	repositoryRequestDuration.WithLabelValues(operation, sink, status).Observe(time.Since(started).Seconds())
}
