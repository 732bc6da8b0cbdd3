package tour

import (
	"github.com/twpayne/go-geom/encoding/geojson"

	"tours.stagebridge.org/internal/geo"
	"tours.stagebridge.org/internal/models"
)

// SuggestionsFeatureCollection renders suggestions for a map: a route line
// and stop points per suggestion, in ranking order.
func SuggestionsFeatureCollection(suggestions []models.TourSuggestion) *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{Features: []*geojson.Feature{}}
	for rank, s := range suggestions {
		stops := make([]geo.Stop, len(s.Communities))
		for i, c := range s.Communities {
			stops[i] = geo.Stop{
				Point: c.Point(),
				Properties: map[string]interface{}{
					"booking_id":   s.BookingIDs[i],
					"community_id": c.ID,
					"name":         c.Name,
					"location":     c.Location,
				},
			}
		}
		props := map[string]interface{}{
			"rank":   rank + 1,
			"region": s.Region,
			"score":  s.Score,
		}
		fc.Features = append(fc.Features, geo.RouteFeatures(s.ID, stops, props)...)
	}
	return fc
}
