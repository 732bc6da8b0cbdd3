package geo

import (
	"fmt"

	"github.com/golang/geo/s2"
)

const s2Level = 6 // S2 cell level with roughly 100–150 km spatial resolution

// CellKey generates a stable S2-based key for a lat/lon at the given cell level.
func CellKey(lat, lon float64, level int) string {
	ll := s2.LatLngFromDegrees(lat, lon)
	cellID := s2.CellIDFromLatLng(ll).Parent(level)
	return fmt.Sprintf("s2_%d", uint64(cellID))
}

// RegionCellKey returns the level-6 CellKey of a located point.
func RegionCellKey(p Point) string {
	lat, lon := p.LatLon()
	return CellKey(lat, lon, s2Level)
}

// FindNearbyCommunities groups points into clusters of mutually reachable
// locations. Two located points are linked when their great-circle distance is
// at most maxDistanceKm; a cluster is a connected component of that graph, so
// its members may be chained through intermediate points rather than all being
// within maxDistanceKm of each other.
//
// Each cluster lists indices into points. Unlocated points appear in no
// cluster. Clusters are ordered by their lowest index and members by
// breadth-first discovery, so identical input always yields identical output.
//
// Every located pair is compared, so the cost is O(n²) in the number of points.
func FindNearbyCommunities(points []Point, maxDistanceKm float64) [][]int {
	n := len(points)
	if n == 0 {
		return [][]int{}
	}

	adjacency := make([][]int, n)
	for i := 0; i < n; i++ {
		if !points[i].Located() {
			continue
		}
		for j := i + 1; j < n; j++ {
			if !points[j].Located() {
				continue
			}
			if points[i].DistanceTo(points[j]) <= maxDistanceKm {
				adjacency[i] = append(adjacency[i], j)
				adjacency[j] = append(adjacency[j], i)
			}
		}
	}

	visited := make([]bool, n)
	clusters := [][]int{}

	for start := 0; start < n; start++ {
		if visited[start] || !points[start].Located() {
			continue
		}

		cluster := []int{}
		queue := []int{start}
		visited[start] = true
		for len(queue) > 0 {
			node := queue[0]
			queue = queue[1:]
			cluster = append(cluster, node)
			for _, neighbor := range adjacency[node] {
				if !visited[neighbor] {
					visited[neighbor] = true
					queue = append(queue, neighbor)
				}
			}
		}
		clusters = append(clusters, cluster)
	}

	return clusters
}
