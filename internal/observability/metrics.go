package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tutegram_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// FeedQueryLatency records discovery-feed query latency.
	FeedQueryLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tutegram_feed_query_latency_seconds",
		Help:    "Feed query latency in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// RecommendationQueryLatency records recommendation query latency.
	RecommendationQueryLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tutegram_recommendation_query_latency_seconds",
		Help:    "Recommendation query latency in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// ConnectionTransitions counts connection state-machine transitions by outcome.
	ConnectionTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tutegram_connection_transitions_total",
		Help: "Total connection status transitions by resulting status",
	}, []string{"status"})
)

// ObserveFeedQuery records the latency of one feed query.
func ObserveFeedQuery(start time.Time) {
	FeedQueryLatency.Observe(time.Since(start).Seconds())
}

// ObserveRecommendationQuery records the latency of one recommendation query.
func ObserveRecommendationQuery(start time.Time) {
	RecommendationQueryLatency.Observe(time.Since(start).Seconds())
}
