package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"tours.stagebridge.org/internal/metrics"
	"tours.stagebridge.org/internal/models"
	"tours.stagebridge.org/internal/store"
	"tours.stagebridge.org/internal/tour"
)

// HealthStatus is the body of /v1/healthcheck. Ready is false while the
// store does not answer a ping.
type HealthStatus struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
	Ready       bool   `json:"ready"`
}

// healthcheckHandler responds 200 when the store is reachable and 503
// otherwise.
func (app *Application) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	ready := true
	if err := app.Store.Ping(ctx); err != nil {
		app.Logger.Warn("store ping failed", "error", err)
		ready = false
	}

	status := HealthStatus{
		Status:      "available",
		Environment: app.ConfigService.Config.Env,
		Version:     app.Version,
		Ready:       ready,
	}

	code := http.StatusOK
	if !ready {
		code = http.StatusServiceUnavailable
	}
	if err := writeJSON(w, code, status, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// readSuggestionParams reads artist_id and the optional overrides of the
// configured suggestion tuning. handled is true when a response was written.
func (app *Application) readSuggestionParams(w http.ResponseWriter, r *http.Request) (artistID int64, opts tour.SuggestOptions, handled bool) {
	qs := r.URL.Query()
	opts = app.ConfigService.Config.GetTuning().Suggestions

	var err error
	if artistID, err = readInt64(qs, "artist_id", 0); err != nil {
		app.badRequestResponse(w, r, err)
		return 0, opts, true
	}
	if opts.MaxDistanceKm, err = readFloat(qs, "max_distance_km", opts.MaxDistanceKm); err != nil {
		app.badRequestResponse(w, r, err)
		return 0, opts, true
	}
	if opts.MinBookings, err = readInt(qs, "min_bookings", opts.MinBookings); err != nil {
		app.badRequestResponse(w, r, err)
		return 0, opts, true
	}
	if opts.DateRangeDays, err = readInt(qs, "date_range_days", opts.DateRangeDays); err != nil {
		app.badRequestResponse(w, r, err)
		return 0, opts, true
	}

	fields := map[string]string{}
	if artistID <= 0 {
		fields["artist_id"] = "required"
	}
	if err := validate.Struct(opts); err != nil {
		verrs, ok := validationErrors(err)
		if !ok {
			app.serverErrorResponse(w, r, err)
			return 0, opts, true
		}
		for k, v := range verrs {
			fields[k] = v
		}
	}
	if len(fields) > 0 {
		app.failedValidationResponse(w, r, fields)
		return 0, opts, true
	}
	return artistID, opts, false
}

// suggestTours runs the suggestion engine for the request. handled is true
// when a response was written.
func (app *Application) suggestTours(w http.ResponseWriter, r *http.Request) ([]models.TourSuggestion, bool) {
	artistID, opts, handled := app.readSuggestionParams(w, r)
	if handled {
		return nil, true
	}

	suggestions, err := app.TourService.SuggestTours(r.Context(), artistID, opts)
	switch {
	case errors.Is(err, store.ErrNotFound):
		app.notFoundResponse(w, r, "artist")
		return nil, true
	case err != nil:
		app.serverErrorResponse(w, r, err)
		return nil, true
	}
	if suggestions == nil {
		suggestions = []models.TourSuggestion{}
	}
	return suggestions, false
}

func (app *Application) suggestionsHandler(w http.ResponseWriter, r *http.Request) {
	suggestions, handled := app.suggestTours(w, r)
	if handled {
		return
	}
	if err := writeJSON(w, http.StatusOK, suggestions, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) suggestionsGeoJSONHandler(w http.ResponseWriter, r *http.Request) {
	suggestions, handled := app.suggestTours(w, r)
	if handled {
		return
	}
	fc := tour.SuggestionsFeatureCollection(suggestions)
	headers := http.Header{"Content-Type": []string{"application/geo+json"}}
	if err := writeJSON(w, http.StatusOK, fc, headers); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) nearbyToursHandler(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	communityID, err := readInt64(qs, "community_id", 0)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	radiusKm, err := readFloat(qs, "radius_km", app.ConfigService.Config.GetTuning().Nearby.RadiusKm)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	params := struct {
		CommunityID int64   `json:"community_id" validate:"gt=0"`
		RadiusKm    float64 `json:"radius_km" validate:"gt=0,lte=20000"`
	}{communityID, radiusKm}
	if err := validate.Struct(params); err != nil {
		if fields, ok := validationErrors(err); ok {
			app.failedValidationResponse(w, r, fields)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	nearby, err := app.TourService.NearbyTours(r.Context(), communityID, radiusKm)
	switch {
	case errors.Is(err, store.ErrNotFound):
		app.notFoundResponse(w, r, "community")
		return
	case errors.Is(err, tour.ErrCommunityUnlocated):
		app.badRequestResponse(w, r, err)
		return
	case err != nil:
		app.serverErrorResponse(w, r, err)
		return
	}
	if nearby == nil {
		nearby = []models.NearbyTour{}
	}
	if err := writeJSON(w, http.StatusOK, nearby, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) createTourHandler(w http.ResponseWriter, r *http.Request) {
	var req models.NewTour
	if err := readJSON(w, r, &req); err != nil {
		metrics.ToursCreated.WithLabelValues("invalid").Inc()
		app.badRequestResponse(w, r, err)
		return
	}

	if err := validate.Struct(req); err != nil {
		fields, ok := validationErrors(err)
		if !ok {
			app.serverErrorResponse(w, r, err)
			return
		}
		metrics.ToursCreated.WithLabelValues("invalid").Inc()
		app.failedValidationResponse(w, r, fields)
		return
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		metrics.ToursCreated.WithLabelValues("invalid").Inc()
		app.failedValidationResponse(w, r, map[string]string{"end_date": "gtefield=start_date"})
		return
	}

	created, err := app.TourService.CreateTour(r.Context(), req)
	switch {
	case errors.Is(err, store.ErrNotFound):
		metrics.ToursCreated.WithLabelValues("not_found").Inc()
		app.notFoundResponse(w, r, "artist")
		return
	case errors.Is(err, store.ErrBookingUnavailable):
		metrics.ToursCreated.WithLabelValues("conflict").Inc()
		app.conflictResponse(w, r, err)
		return
	case err != nil:
		metrics.ToursCreated.WithLabelValues("error").Inc()
		app.serverErrorResponse(w, r, err)
		return
	}
	metrics.ToursCreated.WithLabelValues("created").Inc()

	if err := writeJSON(w, http.StatusCreated, created, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
