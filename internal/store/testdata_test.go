package store

import (
	"time"

	"tours.stagebridge.org/internal/models"
	"tours.stagebridge.org/internal/utils"
)

func ptr[T any](v T) *T { return &v }

func day(d int) *utils.Date {
	v := utils.NewDate(2026, time.March, d)
	return &v
}

// testSeed has one artist with two pending bookings, one already on a tour
// and one approved, plus a community saved with zeroed coordinates.
func testSeed() Seed {
	tourID := int64(10)
	return Seed{
		Artists: []models.Artist{{ID: 1, Name: "The Wanderers"}, {ID: 2, Name: "Solo Act"}},
		Communities: []models.Community{
			{ID: 100, Name: "Brooklyn Hall", Location: "Brooklyn, NY, USA", Latitude: ptr(40.6782), Longitude: ptr(-73.9442), AudienceSize: models.AudienceLabel("medium")},
			{ID: 101, Name: "Hoboken House", Location: "Hoboken, NJ, USA", Latitude: ptr(40.7440), Longitude: ptr(-74.0324)},
			{ID: 102, Name: "Nowhere Club", Location: "Somewhere", Latitude: ptr(0.0), Longitude: ptr(0.0)},
		},
		Bookings: []models.Booking{
			{ID: 2, ArtistID: 1, CommunityID: 101, Status: models.BookingPending, RequestedDate: day(3), Budget: ptr(1200)},
			{ID: 1, ArtistID: 1, CommunityID: 100, Status: models.BookingPending, RequestedDate: day(1), Budget: ptr(1000)},
			{ID: 3, ArtistID: 1, CommunityID: 102, Status: models.BookingPending, TourID: &tourID},
			{ID: 4, ArtistID: 2, CommunityID: 100, Status: models.BookingApproved, RequestedDate: day(20)},
			{ID: 5, ArtistID: 2, CommunityID: 101, Status: models.BookingConfirmed, RequestedDate: day(18)},
			{ID: 6, ArtistID: 2, CommunityID: 102, Status: models.BookingPending},
		},
		Tours: []models.Tour{
			{
				ID: 10, ArtistID: 2, Name: "Spring Run", Region: "NY, USA", Status: models.TourApproved,
				Stops: []models.TourStop{{BookingID: 4, Order: 1}, {BookingID: 5, Order: 0}, {BookingID: 6, Order: 2}},
			},
			{ID: 11, ArtistID: 2, Name: "Old Run", Status: models.TourCompleted, Stops: []models.TourStop{{BookingID: 4}}},
		},
	}
}
