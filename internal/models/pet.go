package models

import "time"

// PetType identifies the pet species chosen at onboarding
type PetType string

const (
	PetTypeDog    PetType = "dog"
	PetTypeCat    PetType = "cat"
	PetTypeDragon PetType = "dragon"
	PetTypeRobot  PetType = "robot"
)

// IsValid reports whether the pet type is one of the supported species
func (t PetType) IsValid() bool {
	switch t {
	case PetTypeDog, PetTypeCat, PetTypeDragon, PetTypeRobot:
		return true
	}
	return false
}

// Mood is the derived display label for the pet's current state.
// It is always recomputed from stats, never set directly.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
	MoodHungry  Mood = "hungry"
	MoodTired   Mood = "tired"
	MoodSick    Mood = "sick"
	MoodDead    Mood = "dead"
)

// Stats holds the four care stats, each clamped to [0, 100]
type Stats struct {
	Hunger    float64 `json:"hunger"`
	Energy    float64 `json:"energy"`
	Happiness float64 `json:"happiness"`
	Health    float64 `json:"health"`
}

// Pet represents a user's virtual pet. One pet per user.
type Pet struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"userId"`
	Name                string    `json:"name"`
	Type                PetType   `json:"type"`
	Level               int       `json:"level"`
	XP                  int       `json:"xp"`
	Stats               Stats     `json:"stats"`
	Mood                Mood      `json:"mood"`
	EquippedSkin        *string   `json:"equippedSkin"`
	EquippedEnvironment *string   `json:"equippedEnvironment"`
	IsDead              bool      `json:"isDead"`
	FreeRevivalUsed     bool      `json:"freeRevivalUsed"`
	LastUpdated         time.Time `json:"lastUpdated"`
	CreatedAt           time.Time `json:"createdAt"`
}
