package tour

import (
	"errors"
	"sort"

	"tours.stagebridge.org/internal/geo"
	"tours.stagebridge.org/internal/models"
)

var ErrCommunityUnlocated = errors.New("community has no coordinates")

// FindNearbyTours lists the open tours with a stop within radiusKm of origin,
// nearest first. Stops without coordinates are ignored; a tour with no located
// stop never matches.
func FindNearbyTours(origin models.Community, tours []models.Tour, radiusKm float64) ([]models.NearbyTour, error) {
	if !origin.Located() {
		return nil, ErrCommunityUnlocated
	}
	from := origin.Point()

	nearby := []models.NearbyTour{}
	for _, t := range tours {
		if !t.Open() {
			continue
		}

		nearest := -1
		best := 0.0
		for i, stop := range t.Stops {
			if !stop.Point().Located() {
				continue
			}
			d := from.DistanceTo(stop.Point())
			if nearest < 0 || d < best {
				nearest, best = i, d
			}
		}
		if nearest < 0 || best > radiusKm {
			continue
		}

		stop := t.Stops[nearest]
		distance := geo.Round2(best)
		nearby = append(nearby, models.NearbyTour{
			TourID:    t.ID,
			TourName:  t.Name,
			Artist:    t.ArtistName,
			Region:    t.Region,
			StartDate: t.StartDate,
			EndDate:   t.EndDate,
			NearestBooking: models.NearestBooking{
				ID:            stop.BookingID,
				Location:      stop.Location,
				RequestedDate: stop.RequestedDate,
				DistanceKm:    distance,
			},
			DistanceToNearestKm: distance,
			TotalStops:          len(t.Stops),
			Status:              t.Status,
		})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceToNearestKm < nearby[j].DistanceToNearestKm
	})
	return nearby, nil
}
