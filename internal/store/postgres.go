package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rotisserie/eris"

	"tours.stagebridge.org/internal/models"
	"tours.stagebridge.org/internal/utils"
)

// Pool is the subset of *pgxpool.Pool used by PostgresStore.
type Pool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
}

// PostgresStore reads the marketplace tables.
type PostgresStore struct {
	pool Pool
}

func NewPostgresStore(pool Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const selectArtistSQL = `SELECT id, name FROM artists WHERE id = $1`

func (s *PostgresStore) GetArtist(ctx context.Context, id int64) (models.Artist, error) {
	var a models.Artist
	err := s.pool.QueryRow(ctx, selectArtistSQL, id).Scan(&a.ID, &a.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Artist{}, eris.Wrapf(ErrNotFound, "store: artist %d", id)
	}
	if err != nil {
		return models.Artist{}, eris.Wrapf(err, "store: get artist %d", id)
	}
	return a, nil
}

const selectCommunitySQL = `
	SELECT id, name, COALESCE(location, ''), latitude::float8, longitude::float8, audience_size
	FROM communities
	WHERE id = $1`

func (s *PostgresStore) GetCommunity(ctx context.Context, id int64) (models.Community, error) {
	var (
		c        models.Community
		lat, lon *float64
		audience *string
	)
	err := s.pool.QueryRow(ctx, selectCommunitySQL, id).
		Scan(&c.ID, &c.Name, &c.Location, &lat, &lon, &audience)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Community{}, eris.Wrapf(ErrNotFound, "store: community %d", id)
	}
	if err != nil {
		return models.Community{}, eris.Wrapf(err, "store: get community %d", id)
	}
	c.Latitude, c.Longitude = normalizeLocation(lat, lon)
	c.AudienceSize = audienceFromColumn(audience)
	return c, nil
}

const selectPendingBookingsSQL = `
	SELECT b.id, b.artist_id, b.community_id, b.status, b.requested_date, b.budget,
	       c.name, COALESCE(c.location, ''), c.latitude::float8, c.longitude::float8, c.audience_size
	FROM bookings b
	JOIN communities c ON c.id = b.community_id
	WHERE b.artist_id = $1 AND b.status = 'pending' AND b.tour_id IS NULL
	ORDER BY b.id`

func (s *PostgresStore) ListPendingBookings(ctx context.Context, artistID int64) ([]models.Booking, error) {
	rows, err := s.pool.Query(ctx, selectPendingBookingsSQL, artistID)
	if err != nil {
		return nil, eris.Wrapf(err, "store: query pending bookings for artist %d", artistID)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		var (
			b         models.Booking
			requested *time.Time
			budget    *int
			lat, lon  *float64
			audience  *string
		)
		err := rows.Scan(
			&b.ID, &b.ArtistID, &b.CommunityID, &b.Status, &requested, &budget,
			&b.Community.Name, &b.Community.Location, &lat, &lon, &audience,
		)
		if err != nil {
			return nil, eris.Wrap(err, "store: scan pending booking")
		}
		b.RequestedDate = dateFromColumn(requested)
		b.Budget = budget
		b.Community.ID = b.CommunityID
		b.Community.Latitude, b.Community.Longitude = normalizeLocation(lat, lon)
		b.Community.AudienceSize = audienceFromColumn(audience)
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "store: iterate pending bookings")
	}
	return bookings, nil
}

const selectOpenToursSQL = `
	SELECT t.id, t.artist_id, a.name, t.name, COALESCE(t.region, ''), t.start_date, t.end_date,
	       t.status, t.total_budget,
	       b.id, b.community_id, COALESCE(c.location, ''), c.latitude::float8, c.longitude::float8,
	       b.requested_date, s.sequence_order
	FROM tours t
	JOIN artists a ON a.id = t.artist_id
	JOIN tour_bookings s ON s.tour_id = t.id
	JOIN bookings b ON b.id = s.booking_id
	JOIN communities c ON c.id = b.community_id
	WHERE t.status IN ('pending', 'approved') AND b.status IN ('approved', 'confirmed')
	ORDER BY t.id, s.sequence_order, b.id`

func (s *PostgresStore) ListOpenTours(ctx context.Context) ([]models.Tour, error) {
	rows, err := s.pool.Query(ctx, selectOpenToursSQL)
	if err != nil {
		return nil, eris.Wrap(err, "store: query open tours")
	}
	defer rows.Close()

	tours := []models.Tour{}
	for rows.Next() {
		var (
			t                  models.Tour
			stop               models.TourStop
			start, end, reqDay *time.Time
			lat, lon           *float64
		)
		err := rows.Scan(
			&t.ID, &t.ArtistID, &t.ArtistName, &t.Name, &t.Region, &start, &end,
			&t.Status, &t.TotalBudget,
			&stop.BookingID, &stop.CommunityID, &stop.Location, &lat, &lon,
			&reqDay, &stop.Order,
		)
		if err != nil {
			return nil, eris.Wrap(err, "store: scan open tour stop")
		}
		stop.Latitude, stop.Longitude = normalizeLocation(lat, lon)
		stop.RequestedDate = dateFromColumn(reqDay)

		if n := len(tours); n > 0 && tours[n-1].ID == t.ID {
			tours[n-1].Stops = append(tours[n-1].Stops, stop)
			continue
		}
		t.StartDate = dateFromColumn(start)
		t.EndDate = dateFromColumn(end)
		t.Stops = []models.TourStop{stop}
		tours = append(tours, t)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "store: iterate open tours")
	}
	return tours, nil
}

const (
	lockBookingsSQL = `
		SELECT b.id, b.community_id, b.requested_date, COALESCE(c.location, ''),
		       c.latitude::float8, c.longitude::float8
		FROM bookings b
		JOIN communities c ON c.id = b.community_id
		WHERE b.id = ANY($1) AND b.artist_id = $2 AND b.status = 'pending' AND b.tour_id IS NULL
		FOR UPDATE OF b`

	insertTourSQL = `
		INSERT INTO tours (artist_id, name, region, start_date, end_date, total_budget, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	insertTourBookingSQL = `
		INSERT INTO tour_bookings (tour_id, booking_id, sequence_order)
		VALUES ($1, $2, $3)`

	assignBookingSQL = `UPDATE bookings SET tour_id = $1 WHERE id = $2`
)

func (s *PostgresStore) CreateTour(ctx context.Context, req models.NewTour) (models.Tour, error) {
	artist, err := s.GetArtist(ctx, req.ArtistID)
	if err != nil {
		return models.Tour{}, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return models.Tour{}, eris.Wrap(err, "store: begin transaction")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	rows, err := tx.Query(ctx, lockBookingsSQL, req.BookingIDs, req.ArtistID)
	if err != nil {
		return models.Tour{}, eris.Wrap(err, "store: lock bookings")
	}
	available := make(map[int64]models.TourStop, len(req.BookingIDs))
	for rows.Next() {
		var (
			stop     models.TourStop
			reqDay   *time.Time
			lat, lon *float64
		)
		if err := rows.Scan(&stop.BookingID, &stop.CommunityID, &reqDay, &stop.Location, &lat, &lon); err != nil {
			rows.Close()
			return models.Tour{}, eris.Wrap(err, "store: scan booking")
		}
		stop.RequestedDate = dateFromColumn(reqDay)
		stop.Latitude, stop.Longitude = normalizeLocation(lat, lon)
		available[stop.BookingID] = stop
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return models.Tour{}, eris.Wrap(err, "store: iterate bookings")
	}
	for _, id := range req.BookingIDs {
		if _, ok := available[id]; !ok {
			return models.Tour{}, eris.Wrapf(ErrBookingUnavailable, "store: booking %d", id)
		}
	}

	tour := models.Tour{
		ArtistID:    req.ArtistID,
		ArtistName:  artist.Name,
		Name:        req.Name,
		Region:      req.Region,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      models.TourPending,
		TotalBudget: req.TotalBudget,
	}
	err = tx.QueryRow(ctx, insertTourSQL,
		tour.ArtistID, tour.Name, tour.Region,
		dateToColumn(tour.StartDate), dateToColumn(tour.EndDate),
		tour.TotalBudget, tour.Status,
	).Scan(&tour.ID)
	if err != nil {
		return models.Tour{}, eris.Wrap(err, "store: insert tour")
	}

	for i, id := range req.BookingIDs {
		if _, err := tx.Exec(ctx, insertTourBookingSQL, tour.ID, id, i); err != nil {
			return models.Tour{}, eris.Wrapf(err, "store: insert stop for booking %d", id)
		}
		if _, err := tx.Exec(ctx, assignBookingSQL, tour.ID, id); err != nil {
			return models.Tour{}, eris.Wrapf(err, "store: assign booking %d", id)
		}
		stop := available[id]
		stop.Order = i
		tour.Stops = append(tour.Stops, stop)
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Tour{}, eris.Wrap(err, "store: commit tour")
	}
	return tour, nil
}

const statsSQL = `
	SELECT
		(SELECT count(*) FROM bookings WHERE status = 'pending' AND tour_id IS NULL),
		(SELECT count(DISTINCT t.id) FROM tours t
			JOIN tour_bookings s ON s.tour_id = t.id
			JOIN bookings b ON b.id = s.booking_id
			WHERE t.status IN ('pending', 'approved') AND b.status IN ('approved', 'confirmed')),
		(SELECT count(*) FROM communities WHERE `+locatedSQL+`),
		(SELECT count(*) FROM communities WHERE NOT (`+locatedSQL+`))`

// locatedSQL mirrors normalizeLocation.
const locatedSQL = `COALESCE(latitude, 0) <> 0 AND COALESCE(longitude, 0) <> 0
			AND latitude BETWEEN -90 AND 90 AND longitude BETWEEN -180 AND 180`

func (s *PostgresStore) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.pool.QueryRow(ctx, statsSQL).
		Scan(&st.PendingBookings, &st.OpenTours, &st.LocatedCommunities, &st.UnlocatedCommunities)
	if err != nil {
		return Stats{}, eris.Wrap(err, "store: query stats")
	}
	return st, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return eris.Wrap(err, "store: ping")
	}
	return nil
}

func dateFromColumn(t *time.Time) *utils.Date {
	if t == nil {
		return nil
	}
	d := utils.DateOf(*t)
	return &d
}

func dateToColumn(d *utils.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time()
	return &t
}

func audienceFromColumn(v *string) models.AudienceSize {
	if v == nil {
		return models.AudienceSize{}
	}
	return models.ParseAudienceSize(*v)
}
