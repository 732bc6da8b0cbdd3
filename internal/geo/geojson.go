package geo

import (
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// Stop is a route stop rendered as a GeoJSON point feature.
type Stop struct {
	Point
	Properties map[string]interface{}
}

// RouteFeatures renders a route as GeoJSON features: one LineString through the
// located stops in NearestNeighborOrder (when at least two are located),
// followed by a Point per located stop. Each point feature gets a "sequence"
// property with its position along the line and a "route_id" property.
func RouteFeatures(routeID string, stops []Stop, routeProperties map[string]interface{}) []*geojson.Feature {
	points := make([]Point, len(stops))
	for i, s := range stops {
		points[i] = s.Point
	}
	order, total := NearestNeighborOrder(points)

	features := make([]*geojson.Feature, 0, len(order)+1)

	if len(order) >= 2 {
		flat := make([]float64, 0, 2*len(order))
		for _, idx := range order {
			lat, lon := points[idx].LatLon()
			flat = append(flat, lon, lat)
		}
		props := map[string]interface{}{
			"route_id":    routeID,
			"distance_km": Round2(total),
		}
		for k, v := range routeProperties {
			props[k] = v
		}
		features = append(features, &geojson.Feature{
			ID:         routeID,
			Geometry:   geom.NewLineStringFlat(geom.XY, flat),
			Properties: props,
		})
	}

	for seq, idx := range order {
		lat, lon := points[idx].LatLon()
		props := map[string]interface{}{
			"route_id": routeID,
			"sequence": seq,
		}
		for k, v := range stops[idx].Properties {
			props[k] = v
		}
		features = append(features, &geojson.Feature{
			Geometry:   geom.NewPointFlat(geom.XY, []float64{lon, lat}),
			Properties: props,
		})
	}

	return features
}
