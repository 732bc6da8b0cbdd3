package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalDistance(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, 0.0, TotalDistance(nil))
	})

	t.Run("single point", func(t *testing.T) {
		assert.Equal(t, 0.0, TotalDistance([]Point{NewPoint(40, -74)}))
	})

	t.Run("two points equal haversine", func(t *testing.T) {
		d := TotalDistance([]Point{
			NewPoint(40.7128, -74.0060),
			NewPoint(40.6782, -73.9442),
		})
		assert.Equal(t, Round2(HaversineDistance(40.7128, -74.0060, 40.6782, -73.9442)), d)
		assert.Greater(t, d, 3.0)
		assert.Less(t, d, 15.0)
	})

	t.Run("unlocated points ignored", func(t *testing.T) {
		d := TotalDistance([]Point{NewPoint(40, -74), {}, NewPoint(41, -74)})
		assert.Equal(t, Round2(HaversineDistance(40, -74, 41, -74)), d)
	})

	t.Run("one located among unlocated", func(t *testing.T) {
		assert.Equal(t, 0.0, TotalDistance([]Point{{}, NewPoint(41, -74), {}}))
	})
}

func TestNearestNeighborOrder(t *testing.T) {
	// Points on a meridian: 0 at 40°, 1 at 43°, 2 at 41°, 3 at 42°.
	points := []Point{
		NewPoint(40, -74),
		NewPoint(43, -74),
		NewPoint(41, -74),
		NewPoint(42, -74),
	}
	order, total := NearestNeighborOrder(points)
	assert.Equal(t, []int{0, 2, 3, 1}, order)
	assert.InDelta(t, HaversineDistance(40, -74, 43, -74), total, 1e-6)
}

func TestNearestNeighborOrderIsGreedy(t *testing.T) {
	// Starting in the middle forces the greedy walk to double back, which an
	// optimal open path starting at the same point would also do, but the
	// greedy choice of the nearer side first makes the total longer than
	// visiting the far side first.
	points := []Point{
		NewPoint(0.1, 10),
		NewPoint(0.1, 9),
		NewPoint(0.1, 12),
	}
	order, total := NearestNeighborOrder(points)
	assert.Equal(t, []int{0, 1, 2}, order)

	nearFirst := HaversineDistance(0.1, 10, 0.1, 9) + HaversineDistance(0.1, 9, 0.1, 12)
	farFirst := HaversineDistance(0.1, 10, 0.1, 12) + HaversineDistance(0.1, 12, 0.1, 9)
	assert.InDelta(t, nearFirst, total, 1e-6)
	assert.Less(t, nearFirst, farFirst)
}
