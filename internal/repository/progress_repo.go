package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"cryptopet/internal/database"
	"cryptopet/internal/models"
)

// ProgressRepository handles database operations for module progress.
// Completed lesson ids are stored as a JSON array, mirroring how
// progress travels over the API.
type ProgressRepository struct {
	db database.DBTX
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db database.DBTX) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// CreateProgress inserts a fresh progress row
func (r *ProgressRepository) CreateProgress(p *models.ModuleProgress) error {
	lessons, err := json.Marshal(p.LessonsCompleted)
	if err != nil {
		return fmt.Errorf("failed to encode lessons: %w", err)
	}

	query := `
		INSERT INTO module_progress (id, user_id, module_id, lessons_completed,
		                             quiz_score, quiz_completed_at,
		                             practice_completed, practice_completed_at, practice_tx_hash,
		                             badge_minted, badge_minted_at, badge_tx_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.Exec(query,
		p.ID, p.UserID, p.ModuleID, string(lessons),
		p.QuizScore, p.QuizCompletedAt,
		p.PracticeCompleted, p.PracticeCompletedAt, p.PracticeTxHash,
		p.BadgeMinted, p.BadgeMintedAt, p.BadgeTxHash,
	)
	if err != nil {
		return fmt.Errorf("failed to create progress: %w", err)
	}
	return nil
}

const progressSelect = `
	SELECT id, user_id, module_id, lessons_completed,
	       quiz_score, quiz_completed_at,
	       practice_completed, practice_completed_at, practice_tx_hash,
	       badge_minted, badge_minted_at, badge_tx_hash,
	       created_at, updated_at
	FROM module_progress
`

// GetProgress retrieves a user's progress for one module
func (r *ProgressRepository) GetProgress(userID, moduleID string) (*models.ModuleProgress, error) {
	row := r.db.QueryRow(progressSelect+" WHERE user_id = ? AND module_id = ?", userID, moduleID)

	p, err := scanProgress(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	return p, nil
}

// ListProgress retrieves all module progress rows for a user
func (r *ProgressRepository) ListProgress(userID string) ([]models.ModuleProgress, error) {
	rows, err := r.db.Query(progressSelect+" WHERE user_id = ? ORDER BY created_at", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}
	defer rows.Close()

	var out []models.ModuleProgress
	for rows.Next() {
		p, err := scanProgress(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan progress: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func scanProgress(scan func(...interface{}) error) (*models.ModuleProgress, error) {
	p := &models.ModuleProgress{}
	var lessons string
	err := scan(
		&p.ID,
		&p.UserID,
		&p.ModuleID,
		&lessons,
		&p.QuizScore,
		&p.QuizCompletedAt,
		&p.PracticeCompleted,
		&p.PracticeCompletedAt,
		&p.PracticeTxHash,
		&p.BadgeMinted,
		&p.BadgeMintedAt,
		&p.BadgeTxHash,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(lessons), &p.LessonsCompleted); err != nil {
		return nil, fmt.Errorf("failed to decode lessons: %w", err)
	}
	return p, nil
}

// UpdateProgress writes the full progress state back
func (r *ProgressRepository) UpdateProgress(p *models.ModuleProgress) error {
	lessons, err := json.Marshal(p.LessonsCompleted)
	if err != nil {
		return fmt.Errorf("failed to encode lessons: %w", err)
	}

	query := `
		UPDATE module_progress
		SET lessons_completed = ?, quiz_score = ?, quiz_completed_at = ?,
		    practice_completed = ?, practice_completed_at = ?, practice_tx_hash = ?,
		    badge_minted = ?, badge_minted_at = ?, badge_tx_hash = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	result, err := r.db.Exec(query,
		string(lessons), p.QuizScore, p.QuizCompletedAt,
		p.PracticeCompleted, p.PracticeCompletedAt, p.PracticeTxHash,
		p.BadgeMinted, p.BadgeMintedAt, p.BadgeTxHash,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update progress: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("progress %s not found", p.ID)
	}
	return nil
}
