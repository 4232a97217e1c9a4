package repository

import (
	"database/sql"
	"fmt"
	"time"

	"cryptopet/internal/database"
	"cryptopet/internal/models"
)

// BadgeRepository handles database operations for earned badges and
// the daily reward ledger
type BadgeRepository struct {
	db database.DBTX
}

// NewBadgeRepository creates a new badge repository
func NewBadgeRepository(db database.DBTX) *BadgeRepository {
	return &BadgeRepository{db: db}
}

// InsertUserBadge records a minted badge
func (r *BadgeRepository) InsertUserBadge(badge *models.UserBadge) error {
	query := `
		INSERT INTO user_badges (id, user_id, badge_id, tx_hash, network, minted_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		badge.ID, badge.UserID, badge.BadgeID, badge.TxHash, badge.Network, badge.MintedAt)
	if err != nil {
		return fmt.Errorf("failed to insert user badge: %w", err)
	}
	return nil
}

// ListUserBadges returns all badges a user has earned, oldest first
func (r *BadgeRepository) ListUserBadges(userID string) ([]models.UserBadge, error) {
	query := `
		SELECT id, user_id, badge_id, tx_hash, network, minted_at
		FROM user_badges
		WHERE user_id = ?
		ORDER BY minted_at
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user badges: %w", err)
	}
	defer rows.Close()

	var badges []models.UserBadge
	for rows.Next() {
		var b models.UserBadge
		if err := rows.Scan(&b.ID, &b.UserID, &b.BadgeID, &b.TxHash, &b.Network, &b.MintedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user badge: %w", err)
		}
		badges = append(badges, b)
	}
	return badges, rows.Err()
}

// HasBadge reports whether the user already earned the badge
func (r *BadgeRepository) HasBadge(userID, badgeID string) (bool, error) {
	query := "SELECT 1 FROM user_badges WHERE user_id = ? AND badge_id = ?"
	var one int
	err := r.db.QueryRow(query, userID, badgeID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check badge: %w", err)
	}
	return true, nil
}

// InsertDailyReward appends a claim to the reward ledger and returns its row id
func (r *BadgeRepository) InsertDailyReward(userID string, day, xp int, claimedAt time.Time) (int64, error) {
	query := `
		INSERT INTO daily_rewards (user_id, day, xp, claimed_at)
		VALUES (?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, userID, day, xp, claimedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert daily reward: %w", err)
	}
	return id, nil
}

// CountDailyRewards returns how many daily rewards the user has claimed
func (r *BadgeRepository) CountDailyRewards(userID string) (int, error) {
	query := "SELECT COUNT(*) FROM daily_rewards WHERE user_id = ?"
	var count int
	if err := r.db.QueryRow(query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count daily rewards: %w", err)
	}
	return count, nil
}
