package store

import (
	"context"
	"errors"

	"tours.stagebridge.org/internal/geo"
	"tours.stagebridge.org/internal/models"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrBookingUnavailable = errors.New("booking is not a pending, unassigned booking of this artist")
)

// Store is the persistence the tour planner reads bookings, communities and
// tours from.
type Store interface {
	GetArtist(ctx context.Context, id int64) (models.Artist, error)
	GetCommunity(ctx context.Context, id int64) (models.Community, error)
	// ListPendingBookings returns the artist's bookings with status pending
	// and no tour, each joined with its community.
	ListPendingBookings(ctx context.Context, artistID int64) ([]models.Booking, error)
	// ListOpenTours returns pending and approved tours with their approved or
	// confirmed stops in visiting order. Tours without such stops are omitted.
	ListOpenTours(ctx context.Context) ([]models.Tour, error)
	// CreateTour stores a pending tour and assigns the listed bookings to it
	// in the given order. Every booking must be a pending, unassigned booking
	// of the artist, or ErrBookingUnavailable is returned and nothing is saved.
	CreateTour(ctx context.Context, req models.NewTour) (models.Tour, error)
	Stats(ctx context.Context) (Stats, error)
	Ping(ctx context.Context) error
}

// Stats are row counts exported as gauges.
type Stats struct {
	PendingBookings      int
	OpenTours            int
	LocatedCommunities   int
	UnlocatedCommunities int
}

// normalizeCoordinate treats a zero coordinate as missing. Profiles saved
// before geocoding carry 0 rather than NULL.
func normalizeCoordinate(v *float64) *float64 {
	if v == nil || *v == 0 {
		return nil
	}
	return v
}

// normalizeLocation applies normalizeCoordinate to both values and drops a
// pair that lies outside the valid latitude/longitude range.
func normalizeLocation(lat, lon *float64) (*float64, *float64) {
	lat, lon = normalizeCoordinate(lat), normalizeCoordinate(lon)
	if lat != nil && lon != nil && !geo.IsValidLatLon(*lat, *lon) {
		return nil, nil
	}
	return lat, lon
}
