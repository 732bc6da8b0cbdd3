package app

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"

	"tours.stagebridge.org/internal/middleware"
)

// Routes registers the API and wraps it, outermost first, with Sentry,
// request ids, security headers and per-client rate limiting. /metrics is
// served from a cache refreshed every 10s. Background goroutines stop when
// ctx is canceled.
func (app *Application) Routes(ctx context.Context) http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", app.healthcheckHandler)
	router.HandlerFunc(http.MethodGet, "/v1/tours/suggestions", app.suggestionsHandler)
	router.HandlerFunc(http.MethodGet, "/v1/tours/suggestions/geojson", app.suggestionsGeoJSONHandler)
	router.HandlerFunc(http.MethodGet, "/v1/tours/nearby", app.nearbyToursHandler)
	router.HandlerFunc(http.MethodPost, "/v1/tours", app.createTourHandler)
	router.Handler(http.MethodGet, "/metrics", middleware.NewCachedPromHandler(ctx, prometheus.DefaultGatherer, 10*time.Second))

	limiter := middleware.NewRateLimiter(ctx, app.rateLimits, 10*time.Minute)

	var handler http.Handler = router
	handler = limiter.Middleware(handler)
	handler = middleware.SecurityHeaders(handler)
	handler = middleware.RequestID(handler)
	return middleware.SentryMiddleware(handler)
}

func (app *Application) rateLimits() (int, int) {
	rl := app.ConfigService.Config.GetTuning().RateLimit
	return rl.RequestsPerMinute, rl.Burst
}
