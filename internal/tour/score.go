package tour

import (
	"math"

	"tours.stagebridge.org/internal/geo"
	"tours.stagebridge.org/internal/models"
	"tours.stagebridge.org/internal/utils"
)

// Score component caps and divisors. Suggestions are ranked by the sum, so
// changing any of these reorders what artists see first.
const (
	bookingPoints    = 10
	bookingCap       = 50
	audienceDivisor  = 100
	audienceCap      = 50
	budgetDivisor    = 500
	budgetCap        = 40
	routeCap         = 30
	routeKmPerPoint  = 20
	dateCap          = 30
	neutralComponent = 15
)

// CalculateTourScore rates a candidate tour; higher is better. The score is
// the sum of five capped components: booking count, audience reach, budget,
// route efficiency (km per hop) and how tightly the requested dates cluster.
// Route and date components fall back to a neutral 15 when there is no
// distance or fewer than two dated bookings to judge.
func CalculateTourScore(communities []models.Community, bookings []models.Booking, totalDistanceKm float64) float64 {
	score := math.Min(float64(len(bookings)*bookingPoints), bookingCap)

	audience := 0
	for _, c := range communities {
		audience += EstimateAudienceSize(c.AudienceSize)
	}
	score += math.Min(float64(audience)/audienceDivisor, audienceCap)

	budget := 0
	for _, b := range bookings {
		if b.Budget != nil {
			budget += *b.Budget
		}
	}
	score += math.Min(float64(budget)/budgetDivisor, budgetCap)

	if len(communities) > 1 && totalDistanceKm > 0 {
		kmPerStop := totalDistanceKm / float64(len(communities)-1)
		score += math.Max(0, routeCap-kmPerStop/routeKmPerPoint)
	} else {
		score += neutralComponent
	}

	if first, last, ok := dateSpan(bookings); ok {
		score += math.Max(0, float64(dateCap-last.DaysSince(first)))
	} else {
		score += neutralComponent
	}

	return geo.Round2(score)
}

// dateSpan returns the earliest and latest requested dates when at least two
// bookings are dated.
func dateSpan(bookings []models.Booking) (utils.Date, utils.Date, bool) {
	var first, last utils.Date
	dated := 0
	for _, b := range bookings {
		if b.RequestedDate == nil {
			continue
		}
		d := *b.RequestedDate
		if dated == 0 || d.Before(first) {
			first = d
		}
		if dated == 0 || d.After(last) {
			last = d
		}
		dated++
	}
	return first, last, dated >= 2
}
