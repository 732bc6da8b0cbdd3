package tour

import (
	"time"

	"tours.stagebridge.org/internal/models"
	"tours.stagebridge.org/internal/utils"
)

func ptr[T any](v T) *T { return &v }

func march(d int) *utils.Date {
	v := utils.NewDate(2026, time.March, d)
	return &v
}

func community(id int64, location string, lat, lon float64) models.Community {
	return models.Community{
		ID:        id,
		Name:      location,
		Location:  location,
		Latitude:  &lat,
		Longitude: &lon,
	}
}

func booking(id int64, c models.Community, date *utils.Date, budget *int) models.Booking {
	return models.Booking{
		ID:            id,
		ArtistID:      1,
		CommunityID:   c.ID,
		Status:        models.BookingPending,
		RequestedDate: date,
		Budget:        budget,
		Community:     c,
	}
}

// twoRegionBookings has two pairs of bookings about 15 km apart within each
// pair and over 1000 km between the pairs. The New York pair has the larger
// budget and the tighter dates.
func twoRegionBookings() []models.Booking {
	manhattan := community(1, "Manhattan, NY, USA", 40.7128, -74.0060)
	bronx := community(2, "Bronx, NY, USA", 40.8500, -73.9000)
	chicago := community(3, "Chicago, IL, USA", 41.8781, -87.6298)
	evanston := community(4, "Evanston, IL, USA", 41.9500, -87.7500)

	return []models.Booking{
		booking(11, chicago, march(10), ptr(800)),
		booking(12, manhattan, march(1), ptr(1000)),
		booking(13, evanston, march(13), ptr(900)),
		booking(14, bronx, march(3), ptr(1200)),
	}
}
