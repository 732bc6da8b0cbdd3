package geo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

func TestRouteFeatures(t *testing.T) {
	stops := []Stop{
		{Point: NewPoint(40, -74), Properties: map[string]interface{}{"community_id": 1}},
		{Point: Point{}, Properties: map[string]interface{}{"community_id": 2}},
		{Point: NewPoint(42, -74), Properties: map[string]interface{}{"community_id": 3}},
		{Point: NewPoint(41, -74), Properties: map[string]interface{}{"community_id": 4}},
	}

	features := RouteFeatures("route-1", stops, map[string]interface{}{"score": 80.5})
	require.Len(t, features, 4)

	line, ok := features[0].Geometry.(*geom.LineString)
	require.True(t, ok)
	assert.Equal(t, "route-1", features[0].ID)
	assert.Equal(t, 80.5, features[0].Properties["score"])
	assert.Equal(t, []float64{-74, 40, -74, 41, -74, 42}, line.FlatCoords())

	for i, f := range features[1:] {
		_, ok := f.Geometry.(*geom.Point)
		require.True(t, ok)
		assert.Equal(t, i, f.Properties["sequence"])
	}
	assert.Equal(t, 4, features[2].Properties["community_id"])

	data, err := json.Marshal(&geojson.FeatureCollection{Features: features})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"LineString"`)
}

func TestRouteFeaturesSingleStop(t *testing.T) {
	features := RouteFeatures("solo", []Stop{{Point: NewPoint(40, -74)}}, nil)
	require.Len(t, features, 1)
	_, ok := features[0].Geometry.(*geom.Point)
	assert.True(t, ok)
}
