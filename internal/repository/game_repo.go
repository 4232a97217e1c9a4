package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"cryptopet/internal/database"
	"cryptopet/internal/models"
)

// SessionHistoryCap is the number of finished sessions kept per user;
// older entries are evicted on insert.
const SessionHistoryCap = 50

// GameRepository handles database operations for minigame sessions,
// daily play counters and high scores
type GameRepository struct {
	db database.DBTX
}

// NewGameRepository creates a new game repository
func NewGameRepository(db database.DBTX) *GameRepository {
	return &GameRepository{db: db}
}

// InsertSession records a finished session and evicts history beyond the cap
func (r *GameRepository) InsertSession(session *models.GameSession) error {
	details, err := json.Marshal(session.Details)
	if err != nil {
		return fmt.Errorf("failed to encode session details: %w", err)
	}

	query := `
		INSERT INTO game_sessions (id, user_id, game_type, score, xp_earned, details, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.Exec(query,
		session.ID, session.UserID, session.GameType,
		session.Score, session.XPEarned, string(details), session.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	evict := `
		DELETE FROM game_sessions
		WHERE user_id = ? AND id NOT IN (
			SELECT id FROM (
				SELECT id FROM game_sessions
				WHERE user_id = ?
				ORDER BY created_at DESC
				LIMIT ?
			) keep
		)
	`
	if _, err := r.db.Exec(evict, session.UserID, session.UserID, SessionHistoryCap); err != nil {
		return fmt.Errorf("failed to evict old sessions: %w", err)
	}
	return nil
}

// ListSessions returns the user's session history, newest first
func (r *GameRepository) ListSessions(userID string, limit int) ([]models.GameSession, error) {
	if limit <= 0 || limit > SessionHistoryCap {
		limit = SessionHistoryCap
	}

	query := `
		SELECT id, user_id, game_type, score, xp_earned, details, created_at
		FROM game_sessions
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`
	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.GameSession
	for rows.Next() {
		var s models.GameSession
		var details string
		if err := rows.Scan(&s.ID, &s.UserID, &s.GameType, &s.Score, &s.XPEarned, &details, &s.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		if err := json.Unmarshal([]byte(details), &s.Details); err != nil {
			return nil, fmt.Errorf("failed to decode session details: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// IncrementPlayCount bumps the daily play counter for the given date.
// The upsert statement is dialect-specific.
func (r *GameRepository) IncrementPlayCount(userID, gameID, playDate string) error {
	_, err := r.db.Exec(r.db.GetDialect().UpsertPlayCount(), userID, gameID, playDate)
	if err != nil {
		return fmt.Errorf("failed to increment play count: %w", err)
	}
	return nil
}

// GetPlayCount returns how many times the user played the game on the
// given date. Missing rows count as zero.
func (r *GameRepository) GetPlayCount(userID, gameID, playDate string) (int, error) {
	query := "SELECT plays FROM game_plays WHERE user_id = ? AND game_id = ? AND play_date = ?"
	var plays int
	err := r.db.QueryRow(query, userID, gameID, playDate).Scan(&plays)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get play count: %w", err)
	}
	return plays, nil
}

// GetHighScore returns the user's high score for a game, zero if none
func (r *GameRepository) GetHighScore(userID, gameID string) (int, error) {
	query := "SELECT score FROM high_scores WHERE user_id = ? AND game_id = ?"
	var score int
	err := r.db.QueryRow(query, userID, gameID).Scan(&score)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get high score: %w", err)
	}
	return score, nil
}

// UpdateHighScore stores the score if it strictly beats the current
// high score, reporting whether it did. Equal scores do not count.
func (r *GameRepository) UpdateHighScore(userID, gameID string, score int) (bool, error) {
	current, err := r.GetHighScore(userID, gameID)
	if err != nil {
		return false, err
	}
	if score <= current {
		return false, nil
	}

	update := `
		UPDATE high_scores
		SET score = ?, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = ? AND game_id = ?
	`
	result, err := r.db.Exec(update, score, userID, gameID)
	if err != nil {
		return false, fmt.Errorf("failed to update high score: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		insert := "INSERT INTO high_scores (user_id, game_id, score) VALUES (?, ?, ?)"
		if _, err := r.db.Exec(insert, userID, gameID, score); err != nil {
			return false, fmt.Errorf("failed to insert high score: %w", err)
		}
	}
	return true, nil
}
