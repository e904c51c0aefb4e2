package dating

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	suggestionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dating_suggestion_sets_total",
			Help: "Total number of date suggestion sets returned",
		},
		[]string{"action", "outcome"},
	)

	compatibleCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dating_compatible_candidates",
			Help:    "Number of templates passing the compatibility filter per request",
			Buckets: prometheus.LinearBuckets(0, 2, 11),
		},
	)

	suggestionScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dating_suggestion_scores",
			Help:    "Distribution of returned suggestion scores",
			Buckets: prometheus.LinearBuckets(0, 20, 11),
		},
	)

	responseTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "dating_response_time_seconds",
			Help: "Response time for date engine requests",
		},
		[]string{"action"},
	)

	revealsBroadcast = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dating_reveals_broadcast_total",
			Help: "Total number of surprise reveals pushed to websocket clients",
		},
	)
)

// RecordSuggestionSet counts a returned set and observes its scores
func RecordSuggestionSet(action string, set *SuggestionSet) {
	outcome := "matched"
	if set.Fallback {
		outcome = "fallback"
	}
	suggestionsTotal.WithLabelValues(action, outcome).Inc()
	compatibleCandidates.Observe(float64(set.Candidates))

	if set.Fallback {
		return
	}
	for _, s := range set.Suggestions {
		suggestionScores.Observe(s.Score)
	}
}

func RecordResponseTime(action string, duration time.Duration) {
	responseTime.WithLabelValues(action).Observe(duration.Seconds())
}

func RecordReveal() {
	revealsBroadcast.Inc()
}
