package config

import (
	"sync"
	"testing"

	"tours.stagebridge.org/internal/tour"
)

func TestUpdateTuning(t *testing.T) {
	cfg := NewConfig(4000, "testing", Document{DatabaseURL: "postgres://localhost/tours"})

	if cfg.GetTuning() != DefaultTuning() {
		t.Fatalf("expected default tuning, got %+v", cfg.GetTuning())
	}

	next := DefaultTuning()
	next.Suggestions.MaxDistanceKm = 120
	next.Nearby.RadiusKm = -1
	cfg.UpdateTuning(next)

	got := cfg.GetTuning()
	if got.Suggestions.MaxDistanceKm != 120 {
		t.Errorf("expected max distance 120, got %v", got.Suggestions.MaxDistanceKm)
	}
	if got.Nearby.RadiusKm != 500 {
		t.Errorf("expected invalid radius to fall back to 500, got %v", got.Nearby.RadiusKm)
	}
	if cfg.DatabaseURL != "postgres://localhost/tours" {
		t.Errorf("database url changed: %q", cfg.DatabaseURL)
	}
}

func TestNewConfigPadsTourDatesByDefault(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
	}{
		{"empty document", Document{}},
		{"explicit zero buffer", Document{Tuning: Tuning{Suggestions: tour.SuggestOptions{MaxDistanceKm: 100}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(4000, "testing", tt.doc)
			if got := cfg.GetTuning().Suggestions.DateBufferDays; got != 2 {
				t.Errorf("expected date buffer 2, got %d", got)
			}

			cfg.UpdateTuning(Tuning{})
			if got := cfg.GetTuning(); got != DefaultTuning() {
				t.Errorf("expected zero tuning to fall back to defaults, got %+v", got)
			}
		})
	}
}

func TestTuningConcurrentAccess(t *testing.T) {
	cfg := NewConfig(4000, "testing", Document{})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			tuning := DefaultTuning()
			tuning.Suggestions.MinBookings = n + 1
			cfg.UpdateTuning(tuning)
		}(i)
		go func() {
			defer wg.Done()
			if cfg.GetTuning().Suggestions.MinBookings < 1 {
				t.Error("observed unset min bookings")
			}
		}()
	}
	wg.Wait()
}
