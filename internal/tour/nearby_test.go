package tour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tours.stagebridge.org/internal/models"
)

func stop(bookingID int64, location string, lat, lon float64) models.TourStop {
	return models.TourStop{BookingID: bookingID, Location: location, Latitude: &lat, Longitude: &lon, RequestedDate: march(int(bookingID))}
}

func TestFindNearbyTours(t *testing.T) {
	origin := community(1, "Jersey City, NJ, USA", 40.7178, -74.0431)

	tours := []models.Tour{
		{
			ID: 1, Name: "Chicago Run", ArtistName: "Trio", Status: models.TourApproved,
			Stops: []models.TourStop{stop(1, "Chicago, IL, USA", 41.8781, -87.6298)},
		},
		{
			ID: 2, Name: "Philly Loop", ArtistName: "Duo", Status: models.TourPending, Region: "PA, USA",
			StartDate: march(1), EndDate: march(9),
			Stops: []models.TourStop{
				stop(2, "Pittsburgh, PA, USA", 40.4406, -79.9959),
				stop(3, "Philadelphia, PA, USA", 39.9526, -75.1652),
			},
		},
		{
			ID: 3, Name: "Hudson Nights", ArtistName: "Solo", Status: models.TourApproved,
			Stops: []models.TourStop{
				{BookingID: 4, Location: "Nowhere"},
				stop(5, "Brooklyn, NY, USA", 40.6782, -73.9442),
			},
		},
		{
			ID: 4, Name: "Finished", Status: models.TourCompleted,
			Stops: []models.TourStop{stop(6, "Hoboken, NJ, USA", 40.7440, -74.0324)},
		},
		{
			ID: 5, Name: "Ghost", Status: models.TourApproved,
			Stops: []models.TourStop{{BookingID: 7, Location: "Nowhere"}},
		},
	}

	nearby, err := FindNearbyTours(origin, tours, 200)
	require.NoError(t, err)
	require.Len(t, nearby, 2)

	assert.Equal(t, int64(3), nearby[0].TourID)
	assert.Equal(t, int64(5), nearby[0].NearestBooking.ID)
	assert.Equal(t, 2, nearby[0].TotalStops)
	assert.Less(t, nearby[0].DistanceToNearestKm, 15.0)

	philly := nearby[1]
	assert.Equal(t, int64(2), philly.TourID)
	assert.Equal(t, "Duo", philly.Artist)
	assert.Equal(t, "PA, USA", philly.Region)
	assert.Equal(t, int64(3), philly.NearestBooking.ID)
	assert.Equal(t, "Philadelphia, PA, USA", philly.NearestBooking.Location)
	assert.Equal(t, philly.DistanceToNearestKm, philly.NearestBooking.DistanceKm)
	assert.Equal(t, "2026-03-01", philly.StartDate.String())
	assert.Nil(t, philly.EstimatedSavings)

	wide, err := FindNearbyTours(origin, tours, 2000)
	require.NoError(t, err)
	require.Len(t, wide, 3)
	assert.Equal(t, int64(1), wide[2].TourID)
	for i := 1; i < len(wide); i++ {
		assert.LessOrEqual(t, wide[i-1].DistanceToNearestKm, wide[i].DistanceToNearestKm)
	}
}

func TestFindNearbyToursUnlocatedOrigin(t *testing.T) {
	_, err := FindNearbyTours(models.Community{ID: 1}, nil, 500)
	assert.ErrorIs(t, err, ErrCommunityUnlocated)
}

func TestFindNearbyToursNoTours(t *testing.T) {
	nearby, err := FindNearbyTours(community(1, "x", 10, 10), nil, 500)
	require.NoError(t, err)
	assert.NotNil(t, nearby)
	assert.Empty(t, nearby)
}
