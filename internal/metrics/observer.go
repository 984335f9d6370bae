package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	observerEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "telemetry_observer",
		Subsystem: "observer",
		Name:      "events_total",
		Help:      "Count of processed events by kind.",
	}, []string{"kind"})

	observerEventDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "telemetry_observer",
		Subsystem: "observer",
		Name:      "event_duration_seconds",
		Help:      "Duration of applying one event, persistence included.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind"})

	observerBlocksTracked = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "telemetry_observer",
		Subsystem: "observer",
		Name:      "blocks_tracked",
		Help:      "Number of block records currently in the ledger.",
	})

	observerBlocksFinalizedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "telemetry_observer",
		Subsystem: "observer",
		Name:      "blocks_finalized_total",
		Help:      "Count of block records that finalized.",
	})

	observerBlocksEvictedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "telemetry_observer",
		Subsystem: "observer",
		Name:      "blocks_evicted_total",
		Help:      "Count of block records evicted by retention.",
	})

	observerRowsEmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "telemetry_observer",
		Subsystem: "observer",
		Name:      "rows_emitted_total",
		Help:      "Count of author rows written to the output sink.",
	})

	observerSinkAppendsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "telemetry_observer",
		Subsystem: "observer",
		Name:      "sink_appends_total",
		Help:      "Count of output sink append calls.",
	}, []string{"status"})

	observerSinkAppendDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "telemetry_observer",
		Subsystem: "observer",
		Name:      "sink_append_duration_seconds",
		Help:      "Duration of output sink append calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	observerSinkAppendRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "telemetry_observer",
		Subsystem: "observer",
		Name:      "sink_append_rows_total",
		Help:      "Count of rows handed to the output sink per append outcome.",
	}, []string{"status"})

	observerSnapshotSavesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "telemetry_observer",
		Subsystem: "observer",
		Name:      "snapshot_saves_total",
		Help:      "Count of snapshot writes by store.",
	}, []string{"store", "status"})

	observerSnapshotSaveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "telemetry_observer",
		Subsystem: "observer",
		Name:      "snapshot_save_duration_seconds",
		Help:      "Duration of snapshot writes by store.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"store", "status"})
)

// Observer tracks metrics for the aggregation core.
type Observer struct{}

// NewObserver creates an Observer metrics collector.
func NewObserver() *Observer {
	return &Observer{}
}

// ObserveEvent records one applied event.
func (m Observer) ObserveEvent(kind string, started time.Time) {
	observerEventsTotal.WithLabelValues(kind).Inc()
	observerEventDuration.WithLabelValues(kind).Observe(time.Since(started).Seconds())
}

// ObserveSinkAppend records an output sink append outcome.
func (m Observer) ObserveSinkAppend(err error, rows int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	observerSinkAppendsTotal.WithLabelValues(status).Inc()
	observerSinkAppendRows.WithLabelValues(status).Add(float64(rows))
	observerSinkAppendDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveSnapshotSave records one snapshot write outcome.
func (m Observer) ObserveSnapshotSave(store string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	observerSnapshotSavesTotal.WithLabelValues(store, status).Inc()
	observerSnapshotSaveDuration.WithLabelValues(store, status).Observe(time.Since(started).Seconds())
}

// SetBlocksTracked records the ledger size after an event.
func (m Observer) SetBlocksTracked(count int) {
	observerBlocksTracked.Set(float64(count))
}

// AddBlocksFinalized counts finalized block records.
func (m Observer) AddBlocksFinalized(count int) {
	observerBlocksFinalizedTotal.Add(float64(count))
}

// AddBlocksEvicted counts evicted block records.
func (m Observer) AddBlocksEvicted(count int) {
	observerBlocksEvictedTotal.Add(float64(count))
}

// AddRowsEmitted counts author rows written to the sink.
func (m Observer) AddRowsEmitted(count int) {
	observerRowsEmittedTotal.Add(float64(count))
}
