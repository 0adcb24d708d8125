package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	extractorBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "qrl_extractor",
		Name:      "blocks_total",
		Help:      "Count of processed blocks.",
	}, []string{"sink", "status"})

	extractorBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "qrl_extractor",
		Name:      "block_duration_seconds",
		Help:      "Duration of processing a single block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"sink", "status"})

	extractorHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "qrl_extractor",
		Name:      "last_block_height",
		Help:      "Height of the last successfully processed block.",
	}, []string{"sink"})

	extractorFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "qrl_extractor",
		Name:      "flush_total",
		Help:      "Count of write buffer flushes.",
	}, []string{"sink", "status"})

	extractorFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "qrl_extractor",
		Name:      "flush_duration_seconds",
		Help:      "Duration of a write buffer flush.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30, 60, 120},
	}, []string{"sink", "status"})

	extractorFlushRows = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "qrl_extractor",
		Name:      "flush_rows",
		Help:      "Number of rows written per flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 10), // 1..262144
	}, []string{"sink"})

	extractorAddressSkippedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "qrl_extractor",
		Name:      "address_skipped_total",
		Help:      "Count of addresses skipped because their state could not be decoded.",
	}, []string{"sink"})
)

type Extractor struct {
	sink string
}

func NewExtractor(sink string) *Extractor {
	if sink == "" {
		sink = "unknown"
	}
	return &Extractor{sink: sink}
}

func (m Extractor) ObserveBlock(err error, height uint64, started time.Time) {
	status := statusOf(err)
	extractorBlocksTotal.WithLabelValues(m.sink, status).Inc()
	extractorBlockDuration.WithLabelValues(m.sink, status).
		Observe(time.Since(started).Seconds())
	if err == nil {
		extractorHeight.WithLabelValues(m.sink).Set(float64(height))
	}
}

func (m Extractor) ObserveFlush(err error, rows int, started time.Time) {
	status := statusOf(err)
	extractorFlushTotal.WithLabelValues(m.sink, status).Inc()
	extractorFlushDuration.WithLabelValues(m.sink, status).
		Observe(time.Since(started).Seconds())
	extractorFlushRows.WithLabelValues(m.sink).Observe(float64(rows))
}

func (m Extractor) ObserveAddressSkipped() {
	extractorAddressSkippedTotal.WithLabelValues(m.sink).Inc()
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
