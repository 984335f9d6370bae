// Package metrics defines prometheus collectors for observer components.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	feedConnectsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "telemetry_observer",
		Subsystem: "feed",
		Name:      "connects_total",
		Help:      "Count of feed connection attempts.",
	}, []string{"status"})

	feedConnectDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "telemetry_observer",
		Subsystem: "feed",
		Name:      "connect_duration_seconds",
		Help:      "Duration of feed connection attempts.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	feedFramesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "telemetry_observer",
		Subsystem: "feed",
		Name:      "frames_total",
		Help:      "Count of received feed frames by decoded kind.",
	}, []string{"kind", "status"})
)

// FeedClient tracks metrics for the telemetry feed transport.
type FeedClient struct{}

// NewFeedClient creates a FeedClient metrics collector.
func NewFeedClient() *FeedClient {
	return &FeedClient{}
}

// ObserveConnect records a connection attempt outcome and duration.
func (m FeedClient) ObserveConnect(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	feedConnectsTotal.WithLabelValues(status).Inc()
	feedConnectDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveFrame records a received frame by decoded kind.
func (m FeedClient) ObserveFrame(kind string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	feedFramesTotal.WithLabelValues(kind, status).Inc()
}
