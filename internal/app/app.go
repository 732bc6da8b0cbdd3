package app

import (
	"log/slog"
	"net/http"

	"tours.stagebridge.org/internal/config"
	"tours.stagebridge.org/internal/metrics"
	"tours.stagebridge.org/internal/store"
	"tours.stagebridge.org/internal/tour"
)

// Application wires the services behind the HTTP API.
type Application struct {
	ConfigService  *config.ConfigService
	TourService    *tour.TourService
	MetricsService *metrics.MetricsService
	Store          store.Store
	Logger         *slog.Logger
	Version        string
}

// New creates and wires all dependencies for the Application.
func New(cfg *config.Config, s store.Store, logger *slog.Logger, client *http.Client, version string) *Application {
	return &Application{
		ConfigService:  config.NewConfigService(logger, client, cfg),
		TourService:    tour.NewTourService(s, logger),
		MetricsService: metrics.NewMetricsService(s, logger),
		Store:          s,
		Logger:         logger,
		Version:        version,
	}
}
