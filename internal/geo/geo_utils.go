package geo

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"
)

// Point is a geographic location whose coordinates may be unknown. A point
// missing either coordinate is "unlocated": it is skipped by distance,
// clustering and routing calculations.
type Point struct {
	Latitude  *float64
	Longitude *float64
}

// NewPoint returns a located point.
func NewPoint(lat, lon float64) Point {
	return Point{Latitude: &lat, Longitude: &lon}
}

// Located reports whether both coordinates are present.
func (p Point) Located() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// LatLon returns the coordinates of a located point.
// Callers must check Located first.
func (p Point) LatLon() (float64, float64) {
	return *p.Latitude, *p.Longitude
}

// DistanceTo returns the great-circle distance in kilometers between two
// located points.
func (p Point) DistanceTo(other Point) float64 {
	lat1, lon1 := p.LatLon()
	lat2, lon2 := other.LatLon()
	return HaversineDistance(lat1, lon1, lat2, lon2)
}

// BoundingBox defines the corners of a lat/lon box
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLon float64 `json:"max_lon"`
}

// ComputeBoundingBox computes the bounding box of all located points.
func ComputeBoundingBox(points []Point) (BoundingBox, error) {
	if len(points) == 0 {
		return BoundingBox{}, fmt.Errorf("no points to compute bounding box")
	}

	minLat := math.MaxFloat64
	maxLat := -math.MaxFloat64
	minLon := math.MaxFloat64
	maxLon := -math.MaxFloat64

	for _, p := range points {
		if !p.Located() {
			continue
		}
		lat, lon := p.LatLon()
		minLat = math.Min(minLat, lat)
		maxLat = math.Max(maxLat, lat)
		minLon = math.Min(minLon, lon)
		maxLon = math.Max(maxLon, lon)
	}

	if minLat == math.MaxFloat64 {
		return BoundingBox{}, fmt.Errorf("no valid latitude/longitude found in points")
	}

	return BoundingBox{
		MinLat: minLat,
		MaxLat: maxLat,
		MinLon: minLon,
		MaxLon: maxLon,
	}, nil
}

// IsValidLatLon returns true if the given latitude and longitude values
// fall within the valid geographic coordinate bounds.
//
// Latitude must be between -90 and 90 degrees, and longitude must be
// between -180 and 180 degrees.
//
// Note: This function treats the coordinate (0,0) as invalid, even though it
// is a valid location in the Gulf of Guinea. Profiles saved without a geocoded
// address carry zeroed coordinates, so (0,0) is treated as a placeholder.
func IsValidLatLon(lat, lon float64) bool {
	if lat == 0 && lon == 0 {
		return false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return false
	}
	return true
}

// earthRadiusInKm represents the mean radius of the Earth in kilometers.
//
// This value (6,371 km) is the Earth's volumetric mean radius, which is
// commonly used for general geospatial calculations and spherical approximations.
//
// Reference: NASA Planetary Fact Sheet – Earth
// https://nssdc.gsfc.nasa.gov/planetary/factsheet/earthfact.html
const earthRadiusInKm = 6371

// HaversineDistance returns the great-circle distance in kilometers between two
// points given in decimal degrees. Inputs are not range checked.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	// Evaluate in a canonical order so swapping the endpoints yields a bitwise
	// identical result.
	if lat2 < lat1 || (lat2 == lat1 && lon2 < lon1) {
		lat1, lon1, lat2, lon2 = lat2, lon2, lat1, lon1
	}
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * earthRadiusInKm
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
