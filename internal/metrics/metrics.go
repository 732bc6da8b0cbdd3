package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var countBuckets = []float64{0, 1, 2, 5, 10, 20, 50, 100, 250}

// Per-run outcomes are histograms rather than per-artist or per-community
// gauges so the series count does not grow with the user base.
var (
	SuggestionsGenerated = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tour_suggestions_generated",
		Help:    "Number of tour suggestions produced per suggestion run",
		Buckets: countBuckets,
	})

	BestSuggestionScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tour_suggestion_best_score",
		Help:    "Score of the top-ranked suggestion per run that produced any",
		Buckets: prometheus.LinearBuckets(20, 20, 11),
	})

	PendingBookingsConsidered = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tour_suggestion_pending_bookings",
		Help:    "Number of pending, unassigned bookings considered per suggestion run",
		Buckets: countBuckets,
	})

	NearbyToursFound = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "nearby_tours_found",
		Help:    "Number of open tours found within the radius per lookup",
		Buckets: countBuckets,
	})
)

var (
	ToursCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tours_created_total",
		Help: "Tour creation attempts by outcome (created, invalid, not_found, conflict, error)",
	}, []string{"outcome"})
)

var (
	StoreRecords = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tour_store_records",
		Help: "Row counts in the booking store by kind",
	}, []string{"kind"})

	StoreUp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tour_store_up",
		Help: "Whether the last store statistics collection succeeded (1 = yes, 0 = no)",
	})
)

var (
	ComputeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tour_compute_duration_seconds",
		Help:    "Time spent clustering and scoring, excluding the store fetch",
		Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
	}, []string{"operation"})

	OutgoingLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "outgoing_http_request_duration_seconds",
		Help:    "Latency of outgoing HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"url", "method", "status"})
)
