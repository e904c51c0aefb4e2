package gifts

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/imadgeboyega/kiekky-couples/internal/matching"
)

var (
	giftSetsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gifts_suggestion_sets_total",
			Help: "Total number of gift sets returned",
		},
		[]string{"action", "outcome"},
	)

	giftScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gifts_match_scores",
			Help:    "Distribution of returned gift scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	triggerMatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gifts_trigger_matches_total",
			Help: "Gifts whose declared triggers overlapped the receiver's",
		},
		[]string{"policy"},
	)
)

func RecordSet(action string, set *Set) {
	outcome := "matched"
	if set.Fallback {
		outcome = "empty"
	}
	giftSetsTotal.WithLabelValues(action, outcome).Inc()

	for _, m := range set.Matches {
		giftScores.Observe(m.Score)
	}
}

func RecordTriggerMatch(policy matching.TriggerPolicy) {
	triggerMatches.WithLabelValues(string(policy)).Inc()
}
