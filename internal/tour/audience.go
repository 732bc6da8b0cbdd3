package tour

import (
	"strings"

	"tours.stagebridge.org/internal/models"
)

const defaultAudience = 100

var audienceBySize = map[string]int{
	"small":      50,
	"medium":     150,
	"large":      300,
	"very_large": 500,
	"xl":         500,
}

// EstimateAudienceSize maps a community's audience size to a head count.
// Counts pass through unchanged; labels are matched case-insensitively and
// anything unknown or unset counts as 100.
func EstimateAudienceSize(size models.AudienceSize) int {
	if size.Count != nil {
		return *size.Count
	}
	if n, ok := audienceBySize[strings.ToLower(size.Label)]; ok {
		return n
	}
	return defaultAudience
}
