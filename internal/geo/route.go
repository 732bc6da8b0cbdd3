package geo

import "math"

// NearestNeighborOrder builds a visiting order over the located points by
// starting at the first located point and repeatedly moving to the closest
// unvisited one. It returns the visited indices (into points) and the summed
// hop distance in kilometers.
//
// The order is a greedy approximation, not a shortest route: there is no
// backtracking or local improvement. Tour scores are calibrated against the
// distances this heuristic produces.
func NearestNeighborOrder(points []Point) ([]int, float64) {
	located := make([]int, 0, len(points))
	for i, p := range points {
		if p.Located() {
			located = append(located, i)
		}
	}
	if len(located) == 0 {
		return nil, 0
	}

	visited := make([]bool, len(located))
	order := make([]int, 0, len(located))
	current := 0
	visited[current] = true
	order = append(order, located[current])
	total := 0.0

	for len(order) < len(located) {
		minDist := math.Inf(1)
		next := -1
		for i := range located {
			if visited[i] {
				continue
			}
			dist := points[located[current]].DistanceTo(points[located[i]])
			if dist < minDist {
				minDist = dist
				next = i
			}
		}
		if next < 0 {
			break
		}
		total += minDist
		visited[next] = true
		current = next
		order = append(order, located[next])
	}

	return order, total
}

// TotalDistance estimates the travel distance in kilometers for visiting every
// located point, using NearestNeighborOrder. The result is rounded to two
// decimals; fewer than two located points gives 0.
func TotalDistance(points []Point) float64 {
	order, total := NearestNeighborOrder(points)
	if len(order) < 2 {
		return 0
	}
	return Round2(total)
}
