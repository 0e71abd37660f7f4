package tracker

import "github.com/prometheus/client_golang/prometheus"

var (
	recordsRecordedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "timesync",
		Subsystem: "tracker",
		Name:      "records_recorded_total",
		Help:      "Number of completed sessions appended to the pending batch.",
	})

	recordsDiscardedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "timesync",
		Subsystem: "tracker",
		Name:      "records_discarded_total",
		Help:      "Number of sub-minute sessions discarded without a record.",
	})

	recordsDeliveredCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "timesync",
		Subsystem: "tracker",
		Name:      "records_delivered_total",
		Help:      "Number of records successfully flushed to the collector.",
	})

	recordsFlushFailedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "timesync",
		Subsystem: "tracker",
		Name:      "records_flush_failed_total",
		Help:      "Number of records whose flush to the collector failed.",
	})

	flushSkippedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "timesync",
		Subsystem: "tracker",
		Name:      "flushes_skipped_total",
		Help:      "Number of flush ticks skipped because a flush was already in flight.",
	})

	flushDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "timesync",
		Subsystem: "tracker",
		Name:      "flush_duration_seconds",
		Help:      "Time spent submitting a batch to the collector.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
	})

	overflowParkedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "timesync",
		Subsystem: "overflow",
		Name:      "records_parked_total",
		Help:      "Number of records moved into the durable overflow store after a failed flush.",
	})

	overflowAppendFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "timesync",
		Subsystem: "overflow",
		Name:      "append_failures_total",
		Help:      "Number of records lost because both the flush and the overflow store write failed.",
	})

	activeTimersGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "timesync",
		Subsystem: "tracker",
		Name:      "active_timers",
		Help:      "Number of activities currently being timed.",
	})

	batchSizeGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "timesync",
		Subsystem: "tracker",
		Name:      "batch_size",
		Help:      "Number of records in the in-memory pending batch.",
	})
)

func init() {
	prometheus.MustRegister(
		recordsRecordedCounter,
		recordsDiscardedCounter,
		recordsDeliveredCounter,
		recordsFlushFailedCounter,
		flushSkippedCounter,
		flushDuration,
		overflowParkedCounter,
		overflowAppendFailures,
		activeTimersGauge,
		batchSizeGauge,
	)
}
