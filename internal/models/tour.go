package models

import (
	"tours.stagebridge.org/internal/geo"
	"tours.stagebridge.org/internal/utils"
)

// Tour statuses.
const (
	TourDraft     = "draft"
	TourPending   = "pending"
	TourApproved  = "approved"
	TourCompleted = "completed"
	TourCancelled = "cancelled"
)

// Tour is a persisted multi-stop itinerary for one artist.
type Tour struct {
	ID          int64       `json:"id"`
	ArtistID    int64       `json:"artist_id"`
	ArtistName  string      `json:"artist_name"`
	Name        string      `json:"name"`
	Region      string      `json:"region"`
	StartDate   *utils.Date `json:"start_date"`
	EndDate     *utils.Date `json:"end_date"`
	Status      string      `json:"status"`
	TotalBudget *int        `json:"total_budget"`
	Stops       []TourStop  `json:"stops"`
}

// Open reports whether other communities can still join the tour.
func (t Tour) Open() bool {
	return t.Status == TourPending || t.Status == TourApproved
}

// TourStop is one booking on a tour, in visiting order.
type TourStop struct {
	BookingID     int64       `json:"booking_id"`
	CommunityID   int64       `json:"community_id"`
	Location      string      `json:"location"`
	Latitude      *float64    `json:"latitude"`
	Longitude     *float64    `json:"longitude"`
	RequestedDate *utils.Date `json:"requested_date"`
	Order         int         `json:"stop_order"`
}

func (s TourStop) Point() geo.Point {
	return geo.Point{Latitude: s.Latitude, Longitude: s.Longitude}
}

// NewTour is a request to persist an accepted suggestion as a pending tour.
type NewTour struct {
	ArtistID    int64       `json:"artist_id" validate:"required,gt=0"`
	Name        string      `json:"name" validate:"required,max=200"`
	Region      string      `json:"region" validate:"max=200"`
	StartDate   *utils.Date `json:"start_date"`
	EndDate     *utils.Date `json:"end_date"`
	TotalBudget *int        `json:"total_budget" validate:"omitempty,gte=0"`
	BookingIDs  []int64     `json:"booking_ids" validate:"required,min=1,unique,dive,gt=0"`
}
