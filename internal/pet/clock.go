package pet

import (
	"time"

	"cryptopet/internal/models"
)

// Stat bounds and per-hour decay rates
const (
	MaxStat = 100.0
	MinStat = 0.0

	HungerDecayRate    = 5.0 // hunger lost per hour
	EnergyDecayRate    = 3.0 // energy lost per hour
	HappinessDecayRate = 2.0 // happiness lost per hour
	HealthDecayRate    = 1.0 // health lost per hour while starving

	StarvingThreshold = 20.0 // hunger below this starts draining health
)

// clamp keeps a stat within [MinStat, MaxStat]
func clamp(v float64) float64 {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}

// Decay returns the stats after time-based decay between lastUpdated and
// now. Decay is linear: a 48-hour gap is one application of the formula
// with hoursPassed=48, not 48 hourly steps. Negative elapsed time (clock
// skew) never decays backward. The caller is responsible for persisting
// the new lastUpdated.
func Decay(stats models.Stats, lastUpdated, now time.Time) models.Stats {
	hoursPassed := now.Sub(lastUpdated).Hours()
	if hoursPassed < 0 {
		hoursPassed = 0
	}

	out := models.Stats{
		Hunger:    clamp(stats.Hunger - HungerDecayRate*hoursPassed),
		Energy:    clamp(stats.Energy - EnergyDecayRate*hoursPassed),
		Happiness: clamp(stats.Happiness - HappinessDecayRate*hoursPassed),
		Health:    stats.Health,
	}

	// Health drains only while the pet is starving
	if out.Hunger < StarvingThreshold {
		out.Health = clamp(stats.Health - HealthDecayRate*hoursPassed)
	}

	return out
}
