package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BatchesFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pitwall_batches_fetched_total",
			Help: "Total number of message batches fetched from the data source",
		}, []string{"source"},
	)

	FetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pitwall_fetch_errors_total",
			Help: "Total number of failed fetch attempts (tick skipped)",
		}, []string{"source"},
	)

	NewMessages = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pitwall_new_messages_total",
		Help: "Total number of race control messages that passed deduplication",
	})

	PostsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pitwall_posts_published_total",
		Help: "Total number of posts submitted, thread continuations included",
	})

	PublishErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pitwall_publish_errors_total",
		Help: "Total number of messages dropped because publishing failed",
	})

	SourceReconnects = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pitwall_source_reconnects_total",
		Help: "Total number of live timing reconnect attempts",
	})

	SourceConnected = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pitwall_source_connected",
		Help: "Whether the live timing connection is up (1) or down (0)",
	})

	TickProcessingTime = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pitwall_tick_processing_milliseconds",
			Help:    "Time spent handling one poll tick",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 16),
		},
	)
)
