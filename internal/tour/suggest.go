package tour

import (
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"tours.stagebridge.org/internal/geo"
	"tours.stagebridge.org/internal/models"
)

// SuggestOptions tunes how bookings are grouped into suggestions.
type SuggestOptions struct {
	// MaxDistanceKm links two communities into the same cluster.
	MaxDistanceKm float64 `json:"max_distance_km" validate:"gt=0"`
	// MinBookings is the smallest cluster worth suggesting.
	MinBookings int `json:"min_bookings" validate:"gte=1"`
	// DateRangeDays is the width of a date window, measured from its first date.
	DateRangeDays int `json:"date_range_days" validate:"gte=0"`
	// DateBufferDays pads the suggested start and end dates.
	DateBufferDays int `json:"date_buffer_days" validate:"gte=0"`
}

func DefaultSuggestOptions() SuggestOptions {
	return SuggestOptions{
		MaxDistanceKm:  500,
		MinBookings:    2,
		DateRangeDays:  30,
		DateBufferDays: 2,
	}
}

var suggestionNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://stagebridge.org/tour-suggestions"))

// Suggest groups an artist's pending, unassigned bookings into tour
// suggestions, best score first.
//
// Bookings are split into date windows, each window is clustered by distance
// and every cluster with at least MinBookings bookings becomes a suggestion.
// Suggestions with equal scores keep the order in which they were built.
func Suggest(bookings []models.Booking, opts SuggestOptions) []models.TourSuggestion {
	suggestions := []models.TourSuggestion{}
	if len(bookings) < opts.MinBookings {
		return suggestions
	}

	for _, window := range FilterBookingsByDateWindow(bookings, opts.DateRangeDays) {
		points := make([]geo.Point, len(window))
		for i, b := range window {
			points[i] = b.Community.Point()
		}

		for _, cluster := range geo.FindNearbyCommunities(points, opts.MaxDistanceKm) {
			if len(cluster) < opts.MinBookings {
				continue
			}
			members := make([]models.Booking, len(cluster))
			for i, idx := range cluster {
				members[i] = window[idx]
			}
			suggestions = append(suggestions, buildSuggestion(members, opts))
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	return suggestions
}

func buildSuggestion(bookings []models.Booking, opts SuggestOptions) models.TourSuggestion {
	communities := make([]models.Community, len(bookings))
	points := make([]geo.Point, len(bookings))
	bookingIDs := make([]int64, len(bookings))
	budget, audience := 0, 0

	for i, b := range bookings {
		communities[i] = b.Community
		points[i] = b.Community.Point()
		bookingIDs[i] = b.ID
		if b.Budget != nil {
			budget += *b.Budget
		}
		audience += EstimateAudienceSize(b.Community.AudienceSize)
	}

	distance := geo.TotalDistance(points)
	start, end := CalculateTourDates(bookings, opts.DateBufferDays)

	s := models.TourSuggestion{
		ID:              suggestionID(points, bookingIDs),
		Region:          DetermineRegionName(communities),
		BookingIDs:      bookingIDs,
		Communities:     communities,
		SuggestedStart:  start,
		SuggestedEnd:    end,
		TotalDistanceKm: distance,
		TotalAudience:   audience,
		Score:           CalculateTourScore(communities, bookings, distance),
	}
	if budget > 0 {
		s.EstimatedBudget = &budget
	}
	if box, err := geo.ComputeBoundingBox(points); err == nil {
		s.Bounds = &box
	}
	return s
}

// suggestionID is stable for the same bookings in the same area, so clients
// can recognise a suggestion across requests.
func suggestionID(points []geo.Point, bookingIDs []int64) string {
	ids := make([]int64, len(bookingIDs))
	copy(ids, bookingIDs)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var b strings.Builder
	for _, p := range points {
		if p.Located() {
			b.WriteString(geo.RegionCellKey(p))
			break
		}
	}
	for _, id := range ids {
		b.WriteByte(':')
		b.WriteString(strconv.FormatInt(id, 10))
	}
	return uuid.NewSHA1(suggestionNamespace, []byte(b.String())).String()
}
