package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptopet/internal/models"
	"cryptopet/internal/service"
)

type memoryProgressStore struct {
	records map[string]*models.ModuleProgress
}

func (s *memoryProgressStore) CreateProgress(p *models.ModuleProgress) error {
	if s.records == nil {
		s.records = make(map[string]*models.ModuleProgress)
	}
	s.records[p.UserID+"|"+p.ModuleID] = p
	return nil
}

func (s *memoryProgressStore) GetProgress(userID, moduleID string) (*models.ModuleProgress, error) {
	return s.records[userID+"|"+moduleID], nil
}

func (s *memoryProgressStore) ListProgress(userID string) ([]models.ModuleProgress, error) {
	return nil, nil
}

func (s *memoryProgressStore) UpdateProgress(p *models.ModuleProgress) error {
	s.records[p.UserID+"|"+p.ModuleID] = p
	return nil
}

type noopPetGateway struct{}

func (noopPetGateway) GetPet(userID string) (*models.Pet, error) { return nil, nil }

func (noopPetGateway) GrantXP(userID string, amount int) (*models.Pet, error) {
	return nil, nil
}

func newTestWebhookHandler() *WebhookHandler {
	progressService := service.NewProgressService(&memoryProgressStore{}, noopPetGateway{})
	return NewWebhookHandler(progressService, "hook-secret")
}

func practiceRequest(body, secret string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/practice", strings.NewReader(body))
	if secret != "" {
		req.Header.Set("X-Webhook-Secret", secret)
	}
	return req
}

func TestPracticeWebhookRejectsBadSecret(t *testing.T) {
	handler := newTestWebhookHandler()

	recorder := httptest.NewRecorder()
	handler.PracticeCompleted(recorder, practiceRequest(`{}`, "wrong"))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = httptest.NewRecorder()
	handler.PracticeCompleted(recorder, practiceRequest(`{}`, ""))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestPracticeWebhookRejectsWhenUnconfigured(t *testing.T) {
	progressService := service.NewProgressService(&memoryProgressStore{}, noopPetGateway{})
	handler := NewWebhookHandler(progressService, "")

	recorder := httptest.NewRecorder()
	handler.PracticeCompleted(recorder, practiceRequest(`{}`, ""))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestPracticeWebhookRequiresFields(t *testing.T) {
	handler := newTestWebhookHandler()

	recorder := httptest.NewRecorder()
	handler.PracticeCompleted(recorder, practiceRequest(`{"userId":"u1"}`, "hook-secret"))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestPracticeWebhookRecordsCompletion(t *testing.T) {
	handler := newTestWebhookHandler()

	body := `{"userId":"u1","moduleId":"first-transaction","txHash":"abc123"}`
	recorder := httptest.NewRecorder()
	handler.PracticeCompleted(recorder, practiceRequest(body, "hook-secret"))

	require.Equal(t, http.StatusOK, recorder.Code)

	var rec models.ModuleProgress
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &rec))
	assert.True(t, rec.PracticeCompleted)
	require.NotNil(t, rec.PracticeTxHash)
	assert.Equal(t, "abc123", *rec.PracticeTxHash)
}

func TestPracticeWebhookUnknownModule(t *testing.T) {
	handler := newTestWebhookHandler()

	body := `{"userId":"u1","moduleId":"nope","txHash":"abc123"}`
	recorder := httptest.NewRecorder()
	handler.PracticeCompleted(recorder, practiceRequest(body, "hook-secret"))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
