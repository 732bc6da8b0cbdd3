package tour

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestSuggestionsFeatureCollection(t *testing.T) {
	opts := DefaultSuggestOptions()
	opts.MaxDistanceKm = 100
	suggestions := Suggest(twoRegionBookings(), opts)
	require.Len(t, suggestions, 2)

	fc := SuggestionsFeatureCollection(suggestions)
	// A line and two points per suggestion.
	require.Len(t, fc.Features, 6)

	line := fc.Features[0]
	_, ok := line.Geometry.(*geom.LineString)
	require.True(t, ok)
	assert.Equal(t, suggestions[0].ID, line.ID)
	assert.Equal(t, 1, line.Properties["rank"])
	assert.Equal(t, "NY, USA", line.Properties["region"])

	point := fc.Features[1]
	assert.Equal(t, suggestions[0].ID, point.Properties["route_id"])
	assert.Contains(t, []interface{}{int64(12), int64(14)}, point.Properties["booking_id"])

	data, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"FeatureCollection"`)
}

func TestSuggestionsFeatureCollectionEmpty(t *testing.T) {
	fc := SuggestionsFeatureCollection(nil)
	data, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"features":[]`)
}
