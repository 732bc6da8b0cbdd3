package tour

import (
	"strings"

	"tours.stagebridge.org/internal/models"
)

const UnknownRegion = "Unknown Region"

// DetermineRegionName picks a label for a group of communities by voting on
// the last two comma-separated parts of each location ("Austin, TX, USA"
// votes for "TX, USA"). Locations with a single part vote for themselves.
// The first key to reach the highest count wins.
func DetermineRegionName(communities []models.Community) string {
	counts := make(map[string]int)
	var keys []string

	for _, c := range communities {
		if c.Location == "" {
			continue
		}
		key := regionKey(c.Location)
		if _, seen := counts[key]; !seen {
			keys = append(keys, key)
		}
		counts[key]++
	}

	best, bestCount := UnknownRegion, 0
	for _, k := range keys {
		if counts[k] > bestCount {
			best, bestCount = k, counts[k]
		}
	}
	return best
}

func regionKey(location string) string {
	parts := strings.Split(location, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) >= 2 {
		return strings.Join(parts[len(parts)-2:], ", ")
	}
	return location
}
