package repository

import (
	"database/sql"
	"fmt"
	"time"

	"cryptopet/internal/database"
	"cryptopet/internal/models"
)

// UserRepository handles database operations for users and sessions
type UserRepository struct {
	db database.DBTX
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a new user
func (r *UserRepository) CreateUser(user *models.User) error {
	query := `
		INSERT INTO users (id, address, email, display_name, wallet_type, streak, last_login_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, user.ID, user.Address, user.Email, user.DisplayName,
		string(user.WalletType), user.Streak, user.LastLoginAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByAddress retrieves a user by wallet address
func (r *UserRepository) GetUserByAddress(address string) (*models.User, error) {
	query := userSelect + " WHERE address = ?"
	return r.scanUser(r.db.QueryRow(query, address))
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(id string) (*models.User, error) {
	query := userSelect + " WHERE id = ?"
	return r.scanUser(r.db.QueryRow(query, id))
}

const userSelect = `
	SELECT id, address, email, COALESCE(display_name, ''), wallet_type, streak,
	       last_claim_at, last_login_at, created_at, updated_at
	FROM users
`

func (r *UserRepository) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var walletType string
	err := row.Scan(
		&user.ID,
		&user.Address,
		&user.Email,
		&user.DisplayName,
		&walletType,
		&user.Streak,
		&user.LastClaimAt,
		&user.LastLoginAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.WalletType = models.WalletType(walletType)
	return user, nil
}

// UpdateProfile updates a user's display name and email
func (r *UserRepository) UpdateProfile(id, displayName string, email *string) error {
	query := `
		UPDATE users
		SET display_name = ?, email = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err := r.db.Exec(query, displayName, email, id)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// TouchLastLogin records a successful login
func (r *UserRepository) TouchLastLogin(id string, at time.Time) error {
	query := `
		UPDATE users
		SET last_login_at = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err := r.db.Exec(query, at, id)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}

// UpdateStreak stores the claim streak and the claim timestamp together
func (r *UserRepository) UpdateStreak(id string, streak int, claimedAt time.Time) error {
	query := `
		UPDATE users
		SET streak = ?, last_claim_at = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err := r.db.Exec(query, streak, claimedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update streak: %w", err)
	}
	return nil
}

// CreateSession creates a new login session
func (r *UserRepository) CreateSession(session *models.Session) error {
	query := `
		INSERT INTO sessions (id, user_id, token_hash, expires_at)
		VALUES (?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, session.ID, session.UserID, session.TokenHash, session.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetSession retrieves a session by ID
func (r *UserRepository) GetSession(sessionID string) (*models.Session, error) {
	query := `
		SELECT id, user_id, token_hash, expires_at, created_at
		FROM sessions
		WHERE id = ?
	`
	session := &models.Session{}
	err := r.db.QueryRow(query, sessionID).Scan(
		&session.ID,
		&session.UserID,
		&session.TokenHash,
		&session.ExpiresAt,
		&session.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// DeleteSession removes a session
func (r *UserRepository) DeleteSession(sessionID string) error {
	query := "DELETE FROM sessions WHERE id = ?"
	_, err := r.db.Exec(query, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpiredSessions removes all expired sessions
func (r *UserRepository) DeleteExpiredSessions() error {
	query := "DELETE FROM sessions WHERE expires_at < ?"
	_, err := r.db.Exec(query, time.Now())
	if err != nil {
		return fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return nil
}
