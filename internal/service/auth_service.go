package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"cryptopet/internal/models"
	"cryptopet/internal/security"
)

var (
	ErrInvalidWalletType   = errors.New("invalid wallet type")
	ErrInvalidAddress      = errors.New("invalid wallet address")
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionExpired      = errors.New("session expired")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// accessTokenTTL is the lifetime of a JWT access token; the refresh
// session lives for the configured session duration
const accessTokenTTL = time.Hour

// SessionStore is the user and session persistence surface for auth
type SessionStore interface {
	CreateUser(user *models.User) error
	GetUserByAddress(address string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	TouchLastLogin(id string, at time.Time) error
	UpdateProfile(id, displayName string, email *string) error
	CreateSession(session *models.Session) error
	GetSession(sessionID string) (*models.Session, error)
	DeleteSession(sessionID string) error
	DeleteExpiredSessions() error
}

// AuthTokens is the credential pair issued on login and refresh
type AuthTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthService handles wallet-based login and the two-token session
// scheme: a short-lived JWT access token plus an opaque refresh token
// whose secret is stored hashed.
type AuthService struct {
	users           SessionStore
	jwtSecret       []byte
	sessionDuration time.Duration
	now             func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(users SessionStore, jwtSecret string, sessionDuration time.Duration) *AuthService {
	return &AuthService{
		users:           users,
		jwtSecret:       []byte(jwtSecret),
		sessionDuration: sessionDuration,
		now:             time.Now,
	}
}

// Login authenticates a wallet address, creating the user on first
// login. Signature verification happens in the wallet provider flow
// upstream; the address arriving here is treated as authenticated.
func (s *AuthService) Login(address string, walletType models.WalletType, displayName string) (*models.User, *AuthTokens, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, nil, ErrInvalidAddress
	}
	if !walletType.IsValid() {
		return nil, nil, ErrInvalidWalletType
	}

	now := s.now()
	user, err := s.users.GetUserByAddress(address)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		user = &models.User{
			ID:          uuid.NewString(),
			Address:     address,
			DisplayName: displayName,
			WalletType:  walletType,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.users.CreateUser(user); err != nil {
			return nil, nil, fmt.Errorf("failed to create user: %w", err)
		}
	} else if err := s.users.TouchLastLogin(user.ID, now); err != nil {
		return nil, nil, fmt.Errorf("failed to record login: %w", err)
	}

	tokens, err := s.issueTokens(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// issueTokens creates a refresh session and a JWT access token. The
// refresh token is "<sessionID>.<secret>"; only the secret's hash is
// stored.
func (s *AuthService) issueTokens(userID string) (*AuthTokens, error) {
	secret, err := security.GenerateToken()
	if err != nil {
		return nil, err
	}
	hash, err := security.HashToken(secret)
	if err != nil {
		return nil, err
	}

	now := s.now()
	session := &models.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		TokenHash: hash,
		ExpiresAt: now.Add(s.sessionDuration),
		CreatedAt: now,
	}
	if err := s.users.CreateSession(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	access, err := security.IssueAccessToken(s.jwtSecret, userID, accessTokenTTL, now)
	if err != nil {
		return nil, err
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: session.ID + "." + secret,
	}, nil
}

// Refresh trades a valid refresh token for a fresh access token
func (s *AuthService) Refresh(refreshToken string) (*AuthTokens, error) {
	session, err := s.lookupSession(refreshToken)
	if err != nil {
		return nil, err
	}

	access, err := security.IssueAccessToken(s.jwtSecret, session.UserID, accessTokenTTL, s.now())
	if err != nil {
		return nil, err
	}
	return &AuthTokens{AccessToken: access, RefreshToken: refreshToken}, nil
}

// Logout revokes the refresh session. Revoking an unknown token is not
// an error.
func (s *AuthService) Logout(refreshToken string) error {
	session, err := s.lookupSession(refreshToken)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) || errors.Is(err, ErrInvalidRefreshToken) || errors.Is(err, ErrSessionExpired) {
			return nil
		}
		return err
	}
	return s.users.DeleteSession(session.ID)
}

// ValidateAccessToken checks a JWT access token and returns the user id
func (s *AuthService) ValidateAccessToken(tokenString string) (string, error) {
	return security.ParseAccessToken(s.jwtSecret, tokenString)
}

// GetUser loads a user by id
func (s *AuthService) GetUser(userID string) (*models.User, error) {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile updates the user's display name and email
func (s *AuthService) UpdateProfile(userID, displayName string, email *string) (*models.User, error) {
	if err := s.users.UpdateProfile(userID, displayName, email); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.GetUser(userID)
}

// CleanupSessions deletes expired refresh sessions
func (s *AuthService) CleanupSessions() error {
	return s.users.DeleteExpiredSessions()
}

// lookupSession resolves and verifies a refresh token
func (s *AuthService) lookupSession(refreshToken string) (*models.Session, error) {
	sessionID, secret, ok := strings.Cut(refreshToken, ".")
	if !ok || sessionID == "" || secret == "" {
		return nil, ErrInvalidRefreshToken
	}

	session, err := s.users.GetSession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.IsExpired() {
		_ = s.users.DeleteSession(session.ID)
		return nil, ErrSessionExpired
	}
	if !security.CheckToken(secret, session.TokenHash) {
		return nil, ErrInvalidRefreshToken
	}
	return session, nil
}
