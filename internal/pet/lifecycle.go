package pet

import (
	"errors"
	"time"

	"cryptopet/internal/models"
)

// Action effect amounts
const (
	FeedHungerGain    = 25.0
	FeedHappinessGain = 5.0

	PlayMinEnergy     = 20.0
	PlayEnergyCost    = 15.0
	PlayHappinessGain = 20.0
	PlayHungerCost    = 10.0

	RestEnergyGain = 30.0
	HealHealthGain = 30.0

	FreeRevivalStat = 50.0
	FullRevivalStat = 100.0
)

// LevelThresholds is the XP floor for each level; index 0 is level 1.
// Levels are recomputed from XP on every change and never decrease from
// XP gain alone.
var LevelThresholds = []int{0, 100, 300, 600, 1000, 1500, 2200, 3000, 4000, 5500}

var (
	// ErrPetDead is returned for any action attempted on a dead pet
	ErrPetDead = errors.New("pet is dead")

	// ErrInsufficientEnergy is returned when the pet is too tired to play
	ErrInsufficientEnergy = errors.New("pet has insufficient energy to play")

	// ErrFreeRevivalUsed is returned when the one-time free revival is spent
	ErrFreeRevivalUsed = errors.New("free revival already used")
)

// LevelForXP returns the level implied by an XP total
func LevelForXP(xp int) int {
	for i := len(LevelThresholds) - 1; i >= 0; i-- {
		if xp >= LevelThresholds[i] {
			return i + 1
		}
	}
	return 1
}

// refresh recomputes the derived fields after any mutation
func refresh(p *models.Pet, now time.Time) {
	p.LastUpdated = now
	p.Mood = ClassifyMood(p)
}

// Feed increases hunger and gives a small happiness boost
func Feed(p *models.Pet, now time.Time) error {
	if p.IsDead {
		return ErrPetDead
	}
	p.Stats.Hunger = clamp(p.Stats.Hunger + FeedHungerGain)
	p.Stats.Happiness = clamp(p.Stats.Happiness + FeedHappinessGain)
	refresh(p, now)
	return nil
}

// Play trades energy and hunger for happiness. Rejected without mutation
// when the pet is too tired.
func Play(p *models.Pet, now time.Time) error {
	if p.IsDead {
		return ErrPetDead
	}
	if p.Stats.Energy < PlayMinEnergy {
		return ErrInsufficientEnergy
	}
	p.Stats.Energy = clamp(p.Stats.Energy - PlayEnergyCost)
	p.Stats.Happiness = clamp(p.Stats.Happiness + PlayHappinessGain)
	p.Stats.Hunger = clamp(p.Stats.Hunger - PlayHungerCost)
	refresh(p, now)
	return nil
}

// Rest restores energy
func Rest(p *models.Pet, now time.Time) error {
	if p.IsDead {
		return ErrPetDead
	}
	p.Stats.Energy = clamp(p.Stats.Energy + RestEnergyGain)
	refresh(p, now)
	return nil
}

// Heal restores health. Healing at full health is a permitted no-op.
func Heal(p *models.Pet, now time.Time) error {
	if p.IsDead {
		return ErrPetDead
	}
	p.Stats.Health = clamp(p.Stats.Health + HealHealthGain)
	refresh(p, now)
	return nil
}

// ApplyStatEffect raises one named stat, used by consumable items.
// Unknown stat names are ignored so a bad catalog entry cannot corrupt
// the pet.
func ApplyStatEffect(p *models.Pet, stat string, amount float64, now time.Time) {
	switch stat {
	case "hunger":
		p.Stats.Hunger = clamp(p.Stats.Hunger + amount)
	case "energy":
		p.Stats.Energy = clamp(p.Stats.Energy + amount)
	case "happiness":
		p.Stats.Happiness = clamp(p.Stats.Happiness + amount)
	case "health":
		p.Stats.Health = clamp(p.Stats.Health + amount)
	default:
		return
	}
	refresh(p, now)
}

// Tick applies time-based decay up to now, then checks for death.
// A dead pet no longer decays.
func Tick(p *models.Pet, now time.Time) {
	if p.IsDead {
		return
	}
	p.Stats = Decay(p.Stats, p.LastUpdated, now)
	if p.Stats.Health <= 0 {
		p.IsDead = true
	}
	refresh(p, now)
}

// Revive brings a dead pet back. The free path costs one level
// permanently and restores half stats; the token path restores full
// stats with no penalty. Token possession is verified by the caller
// before this is invoked.
func Revive(p *models.Pet, useFree bool, now time.Time) error {
	if useFree {
		if p.FreeRevivalUsed {
			return ErrFreeRevivalUsed
		}
		p.Stats = models.Stats{
			Hunger:    FreeRevivalStat,
			Energy:    FreeRevivalStat,
			Happiness: FreeRevivalStat,
			Health:    FreeRevivalStat,
		}
		if p.Level > 1 {
			p.Level--
		}
		p.FreeRevivalUsed = true
	} else {
		p.Stats = models.Stats{
			Hunger:    FullRevivalStat,
			Energy:    FullRevivalStat,
			Happiness: FullRevivalStat,
			Health:    FullRevivalStat,
		}
	}
	p.IsDead = false
	refresh(p, now)
	return nil
}

// AddXP adds experience and recomputes the level from the threshold
// table. A single grant can jump several levels. XP gain never lowers
// the level; only a free revival does.
func AddXP(p *models.Pet, amount int, now time.Time) {
	if amount <= 0 {
		return
	}
	p.XP += amount
	if lvl := LevelForXP(p.XP); lvl > p.Level {
		p.Level = lvl
	}
	refresh(p, now)
}

// ClampStats forces all stats into bounds, fixing corrupt values on
// load instead of failing
func ClampStats(p *models.Pet) {
	p.Stats.Hunger = clamp(p.Stats.Hunger)
	p.Stats.Energy = clamp(p.Stats.Energy)
	p.Stats.Happiness = clamp(p.Stats.Happiness)
	p.Stats.Health = clamp(p.Stats.Health)
}

// NewPet creates a pet with full stats at level 1
func NewPet(id, userID, name string, petType models.PetType, now time.Time) *models.Pet {
	p := &models.Pet{
		ID:     id,
		UserID: userID,
		Name:   name,
		Type:   petType,
		Level:  1,
		XP:     0,
		Stats: models.Stats{
			Hunger:    MaxStat,
			Energy:    MaxStat,
			Happiness: MaxStat,
			Health:    MaxStat,
		},
		LastUpdated: now,
		CreatedAt:   now,
	}
	p.Mood = ClassifyMood(p)
	return p
}
