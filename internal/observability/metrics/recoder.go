// Package metrics provides recoder metrics for observability
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RecoderMetrics contains Prometheus metrics for the recoding engine
type RecoderMetrics struct {
	recordsTotal    *prometheus.CounterVec
	stageGroupTotal *prometheus.CounterVec
	errorFlagsTotal *prometheus.CounterVec
	batchesTotal    prometheus.Counter
	batchSizeHist   prometheus.Histogram
	batchDuration   prometheus.Histogram
}

// NewRecoderMetrics creates and registers new recoder metrics
func NewRecoderMetrics(registry *prometheus.Registry) (*RecoderMetrics, error) {
	m := &RecoderMetrics{}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *RecoderMetrics) initMetrics() {
	m.recordsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recoder_records_total",
			Help: "Total number of records recoded",
		},
		[]string{"staging_path"},
	)

	m.stageGroupTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recoder_stage_group_total",
			Help: "Total number of records per resolved best stage group",
		},
		[]string{"stage"}, // "1".."4", "IS" or "unstaged"
	)

	m.errorFlagsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recoder_error_flags_total",
			Help: "Total number of validation flags raised",
		},
		[]string{"flag"},
	)

	m.batchesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recoder_batches_total",
		Help: "Total number of batches processed",
	})

	m.batchSizeHist = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recoder_batch_size_records",
		Help:    "Number of records per processed batch",
		Buckets: prometheus.ExponentialBuckets(10, 4, 8),
	})

	m.batchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: "recoder_batch_duration_seconds",
		Help: "Time taken to recode a batch",
		// Batches are pure in-memory rule evaluation, so the buckets start
		// well below a millisecond.
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
	})
}

// RecordProcessed increments the per-path record counter.
func (m *RecoderMetrics) RecordProcessed(stagingPath string) {
	m.recordsTotal.WithLabelValues(stagingPath).Inc()
}

// RecordStage increments the best-stage counter. An empty stage is reported
// as "unstaged" to keep the label set printable.
func (m *RecoderMetrics) RecordStage(stage string) {
	if stage == "" {
		stage = "unstaged"
	}
	m.stageGroupTotal.WithLabelValues(stage).Inc()
}

// RecordFlag increments the counter for one validation flag.
func (m *RecoderMetrics) RecordFlag(flag string) {
	m.errorFlagsTotal.WithLabelValues(flag).Inc()
}

// RecordBatch observes one completed batch.
func (m *RecoderMetrics) RecordBatch(size int, duration time.Duration) {
	m.batchesTotal.Inc()
	m.batchSizeHist.Observe(float64(size))
	m.batchDuration.Observe(duration.Seconds())
}

// Describe implements the Collector interface
func (m *RecoderMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.recordsTotal.Describe(ch)
	m.stageGroupTotal.Describe(ch)
	m.errorFlagsTotal.Describe(ch)
	m.batchesTotal.Describe(ch)
	m.batchSizeHist.Describe(ch)
	m.batchDuration.Describe(ch)
}

// Collect implements the Collector interface
func (m *RecoderMetrics) Collect(ch chan<- prometheus.Metric) {
	m.recordsTotal.Collect(ch)
	m.stageGroupTotal.Collect(ch)
	m.errorFlagsTotal.Collect(ch)
	m.batchesTotal.Collect(ch)
	m.batchSizeHist.Collect(ch)
	m.batchDuration.Collect(ch)
}
