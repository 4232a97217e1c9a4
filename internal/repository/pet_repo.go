package repository

import (
	"database/sql"
	"fmt"

	"cryptopet/internal/database"
	"cryptopet/internal/models"
)

// PetRepository handles database operations for pets
type PetRepository struct {
	db database.DBTX
}

// NewPetRepository creates a new pet repository
func NewPetRepository(db database.DBTX) *PetRepository {
	return &PetRepository{db: db}
}

// CreatePet inserts a new pet
func (r *PetRepository) CreatePet(pet *models.Pet) error {
	query := `
		INSERT INTO pets (id, user_id, name, type, level, xp,
		                  hunger, energy, happiness, health, mood,
		                  equipped_skin, equipped_environment,
		                  is_dead, free_revival_used, last_updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		pet.ID, pet.UserID, pet.Name, string(pet.Type), pet.Level, pet.XP,
		pet.Stats.Hunger, pet.Stats.Energy, pet.Stats.Happiness, pet.Stats.Health,
		string(pet.Mood), pet.EquippedSkin, pet.EquippedEnvironment,
		pet.IsDead, pet.FreeRevivalUsed, pet.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("failed to create pet: %w", err)
	}
	return nil
}

const petSelect = `
	SELECT id, user_id, name, type, level, xp,
	       hunger, energy, happiness, health, mood,
	       equipped_skin, equipped_environment,
	       is_dead, free_revival_used, last_updated, created_at
	FROM pets
`

// GetPetByUserID retrieves a user's pet. One pet per user.
func (r *PetRepository) GetPetByUserID(userID string) (*models.Pet, error) {
	return r.scanPet(r.db.QueryRow(petSelect+" WHERE user_id = ?", userID))
}

func (r *PetRepository) scanPet(row *sql.Row) (*models.Pet, error) {
	pet := &models.Pet{}
	var petType, mood string
	err := row.Scan(
		&pet.ID,
		&pet.UserID,
		&pet.Name,
		&petType,
		&pet.Level,
		&pet.XP,
		&pet.Stats.Hunger,
		&pet.Stats.Energy,
		&pet.Stats.Happiness,
		&pet.Stats.Health,
		&mood,
		&pet.EquippedSkin,
		&pet.EquippedEnvironment,
		&pet.IsDead,
		&pet.FreeRevivalUsed,
		&pet.LastUpdated,
		&pet.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pet: %w", err)
	}

	pet.Type = models.PetType(petType)
	pet.Mood = models.Mood(mood)
	return pet, nil
}

// UpdatePet writes the full pet state back. The simulation always
// produces a complete new state, so partial updates are not needed.
func (r *PetRepository) UpdatePet(pet *models.Pet) error {
	query := `
		UPDATE pets
		SET name = ?, level = ?, xp = ?,
		    hunger = ?, energy = ?, happiness = ?, health = ?, mood = ?,
		    equipped_skin = ?, equipped_environment = ?,
		    is_dead = ?, free_revival_used = ?, last_updated = ?
		WHERE id = ?
	`
	result, err := r.db.Exec(query,
		pet.Name, pet.Level, pet.XP,
		pet.Stats.Hunger, pet.Stats.Energy, pet.Stats.Happiness, pet.Stats.Health,
		string(pet.Mood), pet.EquippedSkin, pet.EquippedEnvironment,
		pet.IsDead, pet.FreeRevivalUsed, pet.LastUpdated,
		pet.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update pet: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("pet %s not found", pet.ID)
	}
	return nil
}
