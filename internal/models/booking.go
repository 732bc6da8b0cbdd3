package models

import "tours.stagebridge.org/internal/utils"

// Booking statuses.
const (
	BookingPending   = "pending"
	BookingApproved  = "approved"
	BookingConfirmed = "confirmed"
	BookingRejected  = "rejected"
	BookingCancelled = "cancelled"
)

// Booking is a request from a community to host an artist.
type Booking struct {
	ID            int64       `json:"id"`
	ArtistID      int64       `json:"artist_id"`
	CommunityID   int64       `json:"community_id"`
	TourID        *int64      `json:"tour_id"`
	Status        string      `json:"status"`
	RequestedDate *utils.Date `json:"requested_date"`
	Budget        *int        `json:"budget"`
	Community     Community   `json:"community"`
}

// Unassigned reports whether the booking is pending and not yet part of a tour.
func (b Booking) Unassigned() bool {
	return b.Status == BookingPending && b.TourID == nil
}

// Artist is the performer a booking is for.
type Artist struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
