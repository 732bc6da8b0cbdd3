package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tours.stagebridge.org/internal/config"
	"tours.stagebridge.org/internal/models"
	"tours.stagebridge.org/internal/store"
	"tours.stagebridge.org/internal/utils"
)

func ptr[T any](v T) *T { return &v }

func march(d int) *utils.Date {
	v := utils.NewDate(2026, time.March, d)
	return &v
}

// testSeed gives artist 1 two pending pairs of bookings, one around New
// York and one around Chicago, and artist 2 an approved tour through
// Philadelphia. Community 7 has no coordinates.
func testSeed() store.Seed {
	tourID := int64(30)
	return store.Seed{
		Artists: []models.Artist{{ID: 1, Name: "The Wanderers"}, {ID: 2, Name: "Solo Act"}},
		Communities: []models.Community{
			{ID: 1, Name: "Manhattan Loft", Location: "Manhattan, NY, USA", Latitude: ptr(40.7128), Longitude: ptr(-74.0060), AudienceSize: models.AudienceLabel("large")},
			{ID: 2, Name: "Bronx Hall", Location: "Bronx, NY, USA", Latitude: ptr(40.8500), Longitude: ptr(-73.9000), AudienceSize: models.AudienceCount(120)},
			{ID: 3, Name: "Chicago Room", Location: "Chicago, IL, USA", Latitude: ptr(41.8781), Longitude: ptr(-87.6298)},
			{ID: 4, Name: "Evanston Barn", Location: "Evanston, IL, USA", Latitude: ptr(41.9500), Longitude: ptr(-87.7500)},
			{ID: 5, Name: "Jersey City Yard", Location: "Jersey City, NJ, USA", Latitude: ptr(40.7178), Longitude: ptr(-74.0431)},
			{ID: 6, Name: "Philly Porch", Location: "Philadelphia, PA, USA", Latitude: ptr(39.9526), Longitude: ptr(-75.1652)},
			{ID: 7, Name: "Unmapped", Location: "Somewhere"},
		},
		Bookings: []models.Booking{
			{ID: 11, ArtistID: 1, CommunityID: 3, Status: models.BookingPending, RequestedDate: march(10), Budget: ptr(800)},
			{ID: 12, ArtistID: 1, CommunityID: 1, Status: models.BookingPending, RequestedDate: march(1), Budget: ptr(1000)},
			{ID: 13, ArtistID: 1, CommunityID: 4, Status: models.BookingPending, RequestedDate: march(13), Budget: ptr(900)},
			{ID: 14, ArtistID: 1, CommunityID: 2, Status: models.BookingPending, RequestedDate: march(3), Budget: ptr(1200)},
			{ID: 21, ArtistID: 2, CommunityID: 6, Status: models.BookingApproved, RequestedDate: march(20), TourID: &tourID},
		},
		Tours: []models.Tour{
			{ID: tourID, ArtistID: 2, Name: "East Coast", Region: "PA, USA", Status: models.TourApproved,
				Stops: []models.TourStop{{BookingID: 21}}},
		},
	}
}

func newTestApplication(t *testing.T) *Application {
	t.Helper()

	mem := store.NewMemoryStore()
	mem.Load(testSeed())
	return newTestApplicationWithStore(t, mem)
}

func newTestApplicationWithStore(t *testing.T, s store.Store) *Application {
	t.Helper()

	cfg := config.NewConfig(4000, "testing", config.Document{})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(cfg, s, logger, http.DefaultClient, "test-version")
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// downStore fails every call.
type downStore struct{ store.Store }

var errDown = errors.New("connection refused")

func (downStore) Ping(context.Context) error { return errDown }

func (downStore) Stats(context.Context) (store.Stats, error) { return store.Stats{}, errDown }

func (downStore) GetArtist(context.Context, int64) (models.Artist, error) {
	return models.Artist{}, errDown
}
