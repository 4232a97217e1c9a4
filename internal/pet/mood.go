package pet

import "cryptopet/internal/models"

// Mood thresholds
const (
	sickHealthBelow  = 20.0
	hungryBelow      = 20.0
	tiredBelow       = 20.0
	sadBelow         = 30.0
	happyAbove       = 70.0
	happyHungerAbove = 50.0
	happyEnergyAbove = 50.0
)

// ClassifyMood maps a pet's stats to its display mood. Rules are
// evaluated in strict priority order and the first match wins, so a
// starving pet reads as hungry even when it is also exhausted.
func ClassifyMood(p *models.Pet) models.Mood {
	switch {
	case p.IsDead:
		return models.MoodDead
	case p.Stats.Health < sickHealthBelow:
		return models.MoodSick
	case p.Stats.Hunger < hungryBelow:
		return models.MoodHungry
	case p.Stats.Energy < tiredBelow:
		return models.MoodTired
	case p.Stats.Happiness < sadBelow:
		return models.MoodSad
	case p.Stats.Happiness > happyAbove && p.Stats.Hunger > happyHungerAbove && p.Stats.Energy > happyEnergyAbove:
		return models.MoodHappy
	default:
		return models.MoodNeutral
	}
}
