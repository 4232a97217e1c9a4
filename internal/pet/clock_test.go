package pet

import (
	"testing"
	"time"

	"cryptopet/internal/models"
)

func TestDecayRates(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		stats   models.Stats
		elapsed time.Duration
		want    models.Stats
	}{
		{
			name:    "one hour",
			stats:   models.Stats{Hunger: 100, Energy: 100, Happiness: 100, Health: 100},
			elapsed: time.Hour,
			want:    models.Stats{Hunger: 95, Energy: 97, Happiness: 98, Health: 100},
		},
		{
			name:    "ten hours",
			stats:   models.Stats{Hunger: 100, Energy: 100, Happiness: 100, Health: 100},
			elapsed: 10 * time.Hour,
			want:    models.Stats{Hunger: 50, Energy: 70, Happiness: 80, Health: 100},
		},
		{
			name:    "clamped at zero",
			stats:   models.Stats{Hunger: 10, Energy: 5, Happiness: 3, Health: 100},
			elapsed: 100 * time.Hour,
			want:    models.Stats{Hunger: 0, Energy: 0, Happiness: 0, Health: 0},
		},
		{
			name:    "health drains while starving",
			stats:   models.Stats{Hunger: 15, Energy: 50, Happiness: 50, Health: 80},
			elapsed: 2 * time.Hour,
			want:    models.Stats{Hunger: 5, Energy: 44, Happiness: 46, Health: 78},
		},
		{
			name:    "health stable when fed",
			stats:   models.Stats{Hunger: 90, Energy: 50, Happiness: 50, Health: 80},
			elapsed: 2 * time.Hour,
			want:    models.Stats{Hunger: 80, Energy: 44, Happiness: 46, Health: 80},
		},
		{
			name:    "clock skew never decays backward",
			stats:   models.Stats{Hunger: 50, Energy: 50, Happiness: 50, Health: 50},
			elapsed: -3 * time.Hour,
			want:    models.Stats{Hunger: 50, Energy: 50, Happiness: 50, Health: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decay(tt.stats, base, base.Add(tt.elapsed))
			if got != tt.want {
				t.Errorf("Decay() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// Decay is linear extrapolation, so one 48-hour application must equal
// the formula applied once with hoursPassed=48, not a re-simulation.
func TestDecaySingleStepExtrapolation(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	stats := models.Stats{Hunger: 100, Energy: 100, Happiness: 100, Health: 100}

	got := Decay(stats, base, base.Add(48*time.Hour))

	// hunger and energy bottom out, happiness keeps 100-2*48=4;
	// hunger' < 20 after the gap, so health decays for the full 48 hours
	want := models.Stats{Hunger: 0, Energy: 0, Happiness: 4, Health: 100 - 48}

	if got != want {
		t.Errorf("48h Decay() = %+v, want %+v", got, want)
	}
}

func TestDecayDeterminism(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	now := base.Add(7*time.Hour + 30*time.Minute)
	stats := models.Stats{Hunger: 63, Energy: 41, Happiness: 88, Health: 100}

	first := Decay(stats, base, now)
	for i := 0; i < 10; i++ {
		if got := Decay(stats, base, now); got != first {
			t.Fatalf("Decay() not deterministic: %+v vs %+v", got, first)
		}
	}
}
