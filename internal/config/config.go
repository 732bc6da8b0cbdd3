package config

import (
	"sync"

	"tours.stagebridge.org/internal/tour"
)

// Config holds all the configuration settings for our application.
type Config struct {
	Port        int
	Env         string
	DatabaseURL string
	Mu          sync.RWMutex
	Tuning      Tuning
}

// Tuning holds the settings that may change while the service runs.
type Tuning struct {
	Suggestions tour.SuggestOptions `json:"suggestions"`
	Nearby      NearbyTuning        `json:"nearby"`
	RateLimit   RateLimitTuning     `json:"rate_limit"`
}

type NearbyTuning struct {
	RadiusKm float64 `json:"radius_km"`
}

type RateLimitTuning struct {
	RequestsPerMinute int `json:"requests_per_minute"`
	Burst             int `json:"burst"`
}

// Document is the JSON configuration read from a file or URL.
type Document struct {
	DatabaseURL string `json:"database_url"`
	Tuning
}

// DefaultTuning returns the built-in tuning.
func DefaultTuning() Tuning {
	return Tuning{
		Suggestions: tour.DefaultSuggestOptions(),
		Nearby:      NearbyTuning{RadiusKm: 500},
		RateLimit:   RateLimitTuning{RequestsPerMinute: 120, Burst: 20},
	}
}

// withDefaults replaces unset or out-of-range values with the defaults.
func (t Tuning) withDefaults() Tuning {
	d := DefaultTuning()
	if t.Suggestions.MaxDistanceKm <= 0 {
		t.Suggestions.MaxDistanceKm = d.Suggestions.MaxDistanceKm
	}
	if t.Suggestions.MinBookings <= 0 {
		t.Suggestions.MinBookings = d.Suggestions.MinBookings
	}
	if t.Suggestions.DateRangeDays <= 0 {
		t.Suggestions.DateRangeDays = d.Suggestions.DateRangeDays
	}
	if t.Suggestions.DateBufferDays <= 0 {
		t.Suggestions.DateBufferDays = d.Suggestions.DateBufferDays
	}
	if t.Nearby.RadiusKm <= 0 {
		t.Nearby.RadiusKm = d.Nearby.RadiusKm
	}
	if t.RateLimit.RequestsPerMinute <= 0 {
		t.RateLimit.RequestsPerMinute = d.RateLimit.RequestsPerMinute
	}
	if t.RateLimit.Burst <= 0 {
		t.RateLimit.Burst = d.RateLimit.Burst
	}
	return t
}

// NewConfig creates a new instance of a Config struct.
func NewConfig(port int, env string, doc Document) *Config {
	return &Config{
		Port:        port,
		Env:         env,
		DatabaseURL: doc.DatabaseURL,
		Tuning:      doc.Tuning.withDefaults(),
	}
}

// UpdateTuning safely replaces the tuning.
func (cfg *Config) UpdateTuning(t Tuning) {
	cfg.Mu.Lock()
	defer cfg.Mu.Unlock()
	cfg.Tuning = t.withDefaults()
}

// GetTuning safely returns a copy of the tuning.
func (cfg *Config) GetTuning() Tuning {
	cfg.Mu.RLock()
	defer cfg.Mu.RUnlock()
	return cfg.Tuning
}
