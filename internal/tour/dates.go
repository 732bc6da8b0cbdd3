package tour

import (
	"tours.stagebridge.org/internal/models"
	"tours.stagebridge.org/internal/utils"
)

// CalculateTourDates pads the span of requested dates by bufferDays on each
// side. Both results are nil when no booking has a date.
func CalculateTourDates(bookings []models.Booking, bufferDays int) (*utils.Date, *utils.Date) {
	var first, last *utils.Date
	for _, b := range bookings {
		d := b.RequestedDate
		if d == nil {
			continue
		}
		if first == nil || d.Before(*first) {
			first = d
		}
		if last == nil || d.After(*last) {
			last = d
		}
	}
	if first == nil {
		return nil, nil
	}
	start := first.AddDays(-bufferDays)
	end := last.AddDays(bufferDays)
	return &start, &end
}
