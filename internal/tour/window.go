package tour

import (
	"sort"

	"tours.stagebridge.org/internal/models"
)

// FilterBookingsByDateWindow splits bookings into date windows. Dated
// bookings are sorted by date and a new window starts whenever a booking falls
// more than dateRangeDays after the first date of the current window.
//
// Undated bookings fit any window, so each of them is appended to every
// window and may show up in several suggestions. When no booking is dated,
// everything forms a single window. No bookings means no windows.
func FilterBookingsByDateWindow(bookings []models.Booking, dateRangeDays int) [][]models.Booking {
	if len(bookings) == 0 {
		return [][]models.Booking{}
	}

	var dated, undated []models.Booking
	for _, b := range bookings {
		if b.RequestedDate != nil {
			dated = append(dated, b)
		} else {
			undated = append(undated, b)
		}
	}

	if len(dated) == 0 {
		all := make([]models.Booking, len(bookings))
		copy(all, bookings)
		return [][]models.Booking{all}
	}

	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].RequestedDate.Before(*dated[j].RequestedDate)
	})

	var windows [][]models.Booking
	current := []models.Booking{dated[0]}
	anchor := *dated[0].RequestedDate
	for _, b := range dated[1:] {
		if b.RequestedDate.DaysSince(anchor) > dateRangeDays {
			windows = append(windows, current)
			current = []models.Booking{b}
			anchor = *b.RequestedDate
			continue
		}
		current = append(current, b)
	}
	windows = append(windows, current)

	for i := range windows {
		windows[i] = append(windows[i], undated...)
	}
	return windows
}
