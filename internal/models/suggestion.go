package models

import (
	"tours.stagebridge.org/internal/geo"
	"tours.stagebridge.org/internal/utils"
)

// TourSuggestion is a scored candidate grouping of an artist's pending
// bookings into one tour. Suggestions are built fresh per request and never
// mutated afterwards.
type TourSuggestion struct {
	ID              string           `json:"id"`
	Region          string           `json:"region"`
	BookingIDs      []int64          `json:"booking_ids"`
	Communities     []Community      `json:"communities"`
	SuggestedStart  *utils.Date      `json:"suggested_start"`
	SuggestedEnd    *utils.Date      `json:"suggested_end"`
	TotalDistanceKm float64          `json:"total_distance_km"`
	EstimatedBudget *int             `json:"estimated_budget"`
	TotalAudience   int              `json:"total_audience"`
	Score           float64          `json:"score"`
	Bounds          *geo.BoundingBox `json:"bounds,omitempty"`
}

// NearestBooking is the stop of a nearby tour closest to the asking community.
type NearestBooking struct {
	ID            int64       `json:"id"`
	Location      string      `json:"location"`
	RequestedDate *utils.Date `json:"requested_date"`
	DistanceKm    float64     `json:"distance_km"`
}

// NearbyTour is an open tour passing within a radius of a community.
type NearbyTour struct {
	TourID              int64          `json:"tour_id"`
	TourName            string         `json:"tour_name"`
	Artist              string         `json:"artist"`
	Region              string         `json:"region"`
	StartDate           *utils.Date    `json:"start_date"`
	EndDate             *utils.Date    `json:"end_date"`
	NearestBooking      NearestBooking `json:"nearest_booking"`
	DistanceToNearestKm float64        `json:"distance_to_nearest_km"`
	TotalStops          int            `json:"total_stops"`
	Status              string         `json:"status"`
	EstimatedSavings    *float64       `json:"estimated_savings"`
}
