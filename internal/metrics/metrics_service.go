package metrics

import (
	"context"
	"log/slog"
	"time"

	"tours.stagebridge.org/internal/models"
	"tours.stagebridge.org/internal/store"
)

// MetricsService exports store statistics as gauges.
type MetricsService struct {
	Store  store.Store
	Logger *slog.Logger
}

func NewMetricsService(s store.Store, logger *slog.Logger) *MetricsService {
	return &MetricsService{
		Store:  s,
		Logger: logger,
	}
}

// CollectStoreStats refreshes StoreRecords and StoreUp from the store.
func (ms *MetricsService) CollectStoreStats(ctx context.Context) error {
	st, err := ms.Store.Stats(ctx)
	if err != nil {
		StoreUp.Set(0)
		return err
	}
	StoreUp.Set(1)
	StoreRecords.WithLabelValues("pending_bookings").Set(float64(st.PendingBookings))
	StoreRecords.WithLabelValues("open_tours").Set(float64(st.OpenTours))
	StoreRecords.WithLabelValues("located_communities").Set(float64(st.LocatedCommunities))
	StoreRecords.WithLabelValues("unlocated_communities").Set(float64(st.UnlocatedCommunities))
	return nil
}

// RecordSuggestions exports the outcome of one suggestion run. suggestions
// must be sorted best first.
func RecordSuggestions(considered int, suggestions []models.TourSuggestion, elapsed time.Duration) {
	PendingBookingsConsidered.Observe(float64(considered))
	SuggestionsGenerated.Observe(float64(len(suggestions)))
	if len(suggestions) > 0 {
		BestSuggestionScore.Observe(suggestions[0].Score)
	}
	ComputeDuration.WithLabelValues("suggest").Observe(elapsed.Seconds())
}

// RecordNearby exports the outcome of one nearby-tour lookup.
func RecordNearby(found int, elapsed time.Duration) {
	NearbyToursFound.Observe(float64(found))
	ComputeDuration.WithLabelValues("nearby").Observe(elapsed.Seconds())
}
