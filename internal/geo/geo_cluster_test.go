package geo

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindNearbyCommunities(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, FindNearbyCommunities(nil, 500))
		assert.Empty(t, FindNearbyCommunities([]Point{}, 0))
	})

	t.Run("single point", func(t *testing.T) {
		clusters := FindNearbyCommunities([]Point{NewPoint(40, -74)}, 500)
		assert.Equal(t, [][]int{{0}}, clusters)
	})

	t.Run("two close points share a cluster", func(t *testing.T) {
		clusters := FindNearbyCommunities([]Point{
			NewPoint(40.7128, -74.0060),
			NewPoint(40.6782, -73.9442),
		}, 50)
		require.Len(t, clusters, 1)
		assert.ElementsMatch(t, []int{0, 1}, clusters[0])
	})

	t.Run("two far points are separate", func(t *testing.T) {
		clusters := FindNearbyCommunities([]Point{
			NewPoint(40.7128, -74.0060),
			NewPoint(34.0522, -118.2437),
		}, 500)
		assert.Len(t, clusters, 2)
	})

	t.Run("chained points form one cluster", func(t *testing.T) {
		// A-B and B-C are ~55km apart, A-C ~110km.
		clusters := FindNearbyCommunities([]Point{
			NewPoint(40.0, -74.0),
			NewPoint(40.5, -74.0),
			NewPoint(41.0, -74.0),
		}, 60)
		require.Len(t, clusters, 1)
		assert.ElementsMatch(t, []int{0, 1, 2}, clusters[0])
	})

	t.Run("unlocated points are dropped", func(t *testing.T) {
		lat := 40.05
		points := []Point{
			NewPoint(40.0, -74.0),
			{},
			NewPoint(40.1, -74.0),
			{Latitude: &lat},
		}
		clusters := FindNearbyCommunities(points, 500)
		require.Len(t, clusters, 1)
		assert.ElementsMatch(t, []int{0, 2}, clusters[0])
	})

	t.Run("all far apart gives singletons", func(t *testing.T) {
		points := []Point{
			NewPoint(40.7128, -74.0060),
			NewPoint(34.0522, -118.2437),
			NewPoint(51.5074, -0.1278),
			NewPoint(-33.8688, 151.2093),
		}
		clusters := FindNearbyCommunities(points, 100)
		require.Len(t, clusters, 4)
		for _, c := range clusters {
			assert.Len(t, c, 1)
		}
	})

	t.Run("every located index appears exactly once", func(t *testing.T) {
		points := []Point{
			NewPoint(40.0, -74.0),
			NewPoint(34.0, -118.0),
			{},
			NewPoint(40.2, -74.1),
			NewPoint(34.1, -118.2),
			NewPoint(48.8566, 2.3522),
		}
		clusters := FindNearbyCommunities(points, 100)

		var seen []int
		for _, c := range clusters {
			seen = append(seen, c...)
		}
		sort.Ints(seen)
		assert.Equal(t, []int{0, 1, 3, 4, 5}, seen)
	})

	t.Run("deterministic", func(t *testing.T) {
		points := []Point{
			NewPoint(40.0, -74.0),
			NewPoint(34.0, -118.0),
			NewPoint(40.2, -74.1),
			NewPoint(34.1, -118.2),
		}
		first := FindNearbyCommunities(points, 100)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, FindNearbyCommunities(points, 100))
		}
	})
}

func TestCellKey(t *testing.T) {
	a := CellKey(40.7128, -74.0060, 6)
	b := CellKey(40.7130, -74.0050, 6)
	c := CellKey(34.0522, -118.2437, 6)

	assert.True(t, strings.HasPrefix(a, "s2_"))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, a, RegionCellKey(NewPoint(40.7128, -74.0060)))
}
