package tour

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tours.stagebridge.org/internal/metrics"
	"tours.stagebridge.org/internal/models"
	"tours.stagebridge.org/internal/store"
)

// TourService runs the tour planner against a store.
type TourService struct {
	Store  store.Store
	Logger *slog.Logger
}

func NewTourService(s store.Store, logger *slog.Logger) *TourService {
	return &TourService{
		Store:  s,
		Logger: logger,
	}
}

// SuggestTours loads the artist's pending, unassigned bookings and groups
// them into ranked suggestions. An unknown artist yields store.ErrNotFound.
func (ts *TourService) SuggestTours(ctx context.Context, artistID int64, opts SuggestOptions) ([]models.TourSuggestion, error) {
	if _, err := ts.Store.GetArtist(ctx, artistID); err != nil {
		return nil, err
	}

	bookings, err := ts.Store.ListPendingBookings(ctx, artistID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending bookings for artist %d: %w", artistID, err)
	}

	start := time.Now()
	suggestions := Suggest(bookings, opts)
	elapsed := time.Since(start)
	metrics.RecordSuggestions(len(bookings), suggestions, elapsed)

	ts.Logger.Debug("suggested tours",
		"artist_id", artistID,
		"bookings", len(bookings),
		"suggestions", len(suggestions),
		"elapsed", elapsed,
	)
	return suggestions, nil
}

// NearbyTours lists open tours passing within radiusKm of the community.
// An unknown community yields store.ErrNotFound and one without coordinates
// ErrCommunityUnlocated.
func (ts *TourService) NearbyTours(ctx context.Context, communityID int64, radiusKm float64) ([]models.NearbyTour, error) {
	community, err := ts.Store.GetCommunity(ctx, communityID)
	if err != nil {
		return nil, err
	}
	if !community.Located() {
		return nil, ErrCommunityUnlocated
	}

	tours, err := ts.Store.ListOpenTours(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open tours: %w", err)
	}

	start := time.Now()
	nearby, err := FindNearbyTours(community, tours, radiusKm)
	if err != nil {
		return nil, err
	}
	metrics.RecordNearby(len(nearby), time.Since(start))
	return nearby, nil
}

// CreateTour persists a suggestion the artist accepted.
func (ts *TourService) CreateTour(ctx context.Context, req models.NewTour) (models.Tour, error) {
	t, err := ts.Store.CreateTour(ctx, req)
	if err != nil {
		return models.Tour{}, err
	}
	ts.Logger.Info("created tour",
		"tour_id", t.ID,
		"artist_id", t.ArtistID,
		"stops", len(t.Stops),
	)
	return t, nil
}
