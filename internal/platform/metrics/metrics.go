package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	ReviewsSubmitted prometheus.Counter
	ReviewsRejected  prometheus.Counter
	HelpfulVotes     prometheus.Counter
	SearchesRun      prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		ReviewsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "campuspulse_reviews_submitted_total",
			Help: "Total number of reviews accepted and persisted",
		}),
		ReviewsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "campuspulse_reviews_rejected_total",
			Help: "Total number of review submissions rejected by validation",
		}),
		HelpfulVotes: promauto.NewCounter(prometheus.CounterOpts{
			Name: "campuspulse_helpful_votes_total",
			Help: "Total number of helpful votes recorded",
		}),
		SearchesRun: promauto.NewCounter(prometheus.CounterOpts{
			Name: "campuspulse_searches_total",
			Help: "Total number of review searches executed",
		}),
	}
}

// IncrementReviewsSubmitted increments the accepted submissions counter by 1
func (m *Metrics) IncrementReviewsSubmitted() {
	m.ReviewsSubmitted.Inc()
}

// IncrementReviewsRejected increments the rejected submissions counter by 1
func (m *Metrics) IncrementReviewsRejected() {
	m.ReviewsRejected.Inc()
}

// IncrementHelpfulVotes increments the helpful votes counter by 1
func (m *Metrics) IncrementHelpfulVotes() {
	m.HelpfulVotes.Inc()
}

// IncrementSearches increments the search counter by 1
func (m *Metrics) IncrementSearches() {
	m.SearchesRun.Inc()
}
