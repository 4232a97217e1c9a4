package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptopet/internal/models"
	"cryptopet/internal/service"
)

type memorySessionStore struct {
	users    map[string]*models.User
	sessions map[string]*models.Session
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{
		users:    make(map[string]*models.User),
		sessions: make(map[string]*models.Session),
	}
}

func (s *memorySessionStore) CreateUser(user *models.User) error {
	s.users[user.ID] = user
	return nil
}

func (s *memorySessionStore) GetUserByAddress(address string) (*models.User, error) {
	for _, u := range s.users {
		if u.Address == address {
			return u, nil
		}
	}
	return nil, nil
}

func (s *memorySessionStore) GetUserByID(id string) (*models.User, error) {
	return s.users[id], nil
}

func (s *memorySessionStore) TouchLastLogin(id string, at time.Time) error { return nil }

func (s *memorySessionStore) UpdateProfile(id, displayName string, email *string) error {
	return nil
}

func (s *memorySessionStore) CreateSession(session *models.Session) error {
	s.sessions[session.ID] = session
	return nil
}

func (s *memorySessionStore) GetSession(sessionID string) (*models.Session, error) {
	return s.sessions[sessionID], nil
}

func (s *memorySessionStore) DeleteSession(sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

func (s *memorySessionStore) DeleteExpiredSessions() error { return nil }

func newTestMiddleware(t *testing.T) (*Middleware, *service.AuthTokens, *models.User) {
	authService := service.NewAuthService(newMemorySessionStore(), "test-secret", time.Hour)
	user, tokens, err := authService.Login("GTEST123", models.WalletFreighter, "Tester")
	require.NoError(t, err)
	return NewMiddleware(authService), tokens, user
}

func TestRequireAuthMissingToken(t *testing.T) {
	middleware, _, _ := newTestMiddleware(t)

	handler := middleware.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})

	recorder := httptest.NewRecorder()
	handler(recorder, httptest.NewRequest(http.MethodGet, "/api/pet", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	middleware, _, _ := newTestMiddleware(t)

	handler := middleware.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/pet", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	recorder := httptest.NewRecorder()
	handler(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAuthInjectsUserID(t *testing.T) {
	middleware, tokens, user := newTestMiddleware(t)

	var got string
	handler := middleware.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		got = userID(r)
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/pet", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	recorder := httptest.NewRecorder()
	handler(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, user.ID, got)
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := bearerToken(req)
	assert.False(t, ok)

	req.Header.Set("Authorization", "Basic abc")
	_, ok = bearerToken(req)
	assert.False(t, ok)

	req.Header.Set("Authorization", "Bearer abc123")
	token, ok := bearerToken(req)
	assert.True(t, ok)
	assert.Equal(t, "abc123", token)
}
