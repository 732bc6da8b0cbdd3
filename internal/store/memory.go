package store

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/goccy/go-json"

	"tours.stagebridge.org/internal/models"
)

// MemoryStore keeps everything in maps. It backs local runs and tests.
type MemoryStore struct {
	mu          sync.RWMutex
	artists     map[int64]models.Artist
	communities map[int64]models.Community
	bookings    map[int64]models.Booking
	tours       map[int64]models.Tour
	nextTourID  int64
}

// Seed is the JSON document accepted by LoadSeedFile.
type Seed struct {
	Artists     []models.Artist    `json:"artists"`
	Communities []models.Community `json:"communities"`
	Bookings    []models.Booking   `json:"bookings"`
	Tours       []models.Tour      `json:"tours"`
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		artists:     make(map[int64]models.Artist),
		communities: make(map[int64]models.Community),
		bookings:    make(map[int64]models.Booking),
		tours:       make(map[int64]models.Tour),
		nextTourID:  1,
	}
}

// LoadSeedFile reads a Seed document from path into the store.
func (s *MemoryStore) LoadSeedFile(path string) error {
	// #nosec G304 -- path comes from a command-line flag
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}
	var seed Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}
	s.Load(seed)
	return nil
}

// Load adds the seed records, replacing records with the same ID.
// Booking communities are resolved from the seeded communities by ID.
func (s *MemoryStore) Load(seed Seed) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range seed.Artists {
		s.artists[a.ID] = a
	}
	for _, c := range seed.Communities {
		c.Latitude, c.Longitude = normalizeLocation(c.Latitude, c.Longitude)
		s.communities[c.ID] = c
	}
	for _, b := range seed.Bookings {
		s.bookings[b.ID] = b
	}
	for _, t := range seed.Tours {
		s.tours[t.ID] = t
		if t.ID >= s.nextTourID {
			s.nextTourID = t.ID + 1
		}
	}
}

func (s *MemoryStore) GetArtist(_ context.Context, id int64) (models.Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.artists[id]
	if !ok {
		return models.Artist{}, fmt.Errorf("artist %d: %w", id, ErrNotFound)
	}
	return a, nil
}

func (s *MemoryStore) GetCommunity(_ context.Context, id int64) (models.Community, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.communities[id]
	if !ok {
		return models.Community{}, fmt.Errorf("community %d: %w", id, ErrNotFound)
	}
	return c, nil
}

func (s *MemoryStore) ListPendingBookings(_ context.Context, artistID int64) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := []models.Booking{}
	for _, b := range s.bookings {
		if b.ArtistID != artistID || !b.Unassigned() {
			continue
		}
		bookings = append(bookings, s.withCommunity(b))
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ID < bookings[j].ID })
	return bookings, nil
}

func (s *MemoryStore) ListOpenTours(_ context.Context) ([]models.Tour, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tours := []models.Tour{}
	for _, t := range s.tours {
		if !t.Open() {
			continue
		}
		var stops []models.TourStop
		for _, stop := range t.Stops {
			b, ok := s.bookings[stop.BookingID]
			if !ok || (b.Status != models.BookingApproved && b.Status != models.BookingConfirmed) {
				continue
			}
			stops = append(stops, s.stopFor(b, stop.Order))
		}
		if len(stops) == 0 {
			continue
		}
		sort.SliceStable(stops, func(i, j int) bool { return stops[i].Order < stops[j].Order })
		t.Stops = stops
		if a, ok := s.artists[t.ArtistID]; ok {
			t.ArtistName = a.Name
		}
		tours = append(tours, t)
	}
	sort.Slice(tours, func(i, j int) bool { return tours[i].ID < tours[j].ID })
	return tours, nil
}

func (s *MemoryStore) CreateTour(_ context.Context, req models.NewTour) (models.Tour, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	artist, ok := s.artists[req.ArtistID]
	if !ok {
		return models.Tour{}, fmt.Errorf("artist %d: %w", req.ArtistID, ErrNotFound)
	}

	for _, id := range req.BookingIDs {
		b, ok := s.bookings[id]
		if !ok || b.ArtistID != req.ArtistID || !b.Unassigned() {
			return models.Tour{}, fmt.Errorf("booking %d: %w", id, ErrBookingUnavailable)
		}
	}

	tour := models.Tour{
		ID:          s.nextTourID,
		ArtistID:    req.ArtistID,
		ArtistName:  artist.Name,
		Name:        req.Name,
		Region:      req.Region,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      models.TourPending,
		TotalBudget: req.TotalBudget,
	}
	s.nextTourID++

	for i, id := range req.BookingIDs {
		b := s.bookings[id]
		tourID := tour.ID
		b.TourID = &tourID
		s.bookings[id] = b
		tour.Stops = append(tour.Stops, s.stopFor(b, i))
	}
	s.tours[tour.ID] = tour
	return tour, nil
}

func (s *MemoryStore) Stats(ctx context.Context) (Stats, error) {
	s.mu.RLock()
	var st Stats
	for _, b := range s.bookings {
		if b.Unassigned() {
			st.PendingBookings++
		}
	}
	for _, c := range s.communities {
		if c.Located() {
			st.LocatedCommunities++
		} else {
			st.UnlocatedCommunities++
		}
	}
	s.mu.RUnlock()

	tours, err := s.ListOpenTours(ctx)
	if err != nil {
		return Stats{}, err
	}
	st.OpenTours = len(tours)
	return st, nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

// withCommunity must be called with s.mu held.
func (s *MemoryStore) withCommunity(b models.Booking) models.Booking {
	if c, ok := s.communities[b.CommunityID]; ok {
		b.Community = c
	}
	return b
}

// stopFor must be called with s.mu held.
func (s *MemoryStore) stopFor(b models.Booking, order int) models.TourStop {
	c := s.communities[b.CommunityID]
	return models.TourStop{
		BookingID:     b.ID,
		CommunityID:   b.CommunityID,
		Location:      c.Location,
		Latitude:      c.Latitude,
		Longitude:     c.Longitude,
		RequestedDate: b.RequestedDate,
		Order:         order,
	}
}
