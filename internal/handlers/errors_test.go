package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptopet/internal/pet"
	"cryptopet/internal/progress"
	"cryptopet/internal/service"
)

func TestRespondWithErrorWritesJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	respondWithError(recorder, http.StatusTeapot, "teapot", nil)

	assert.Equal(t, http.StatusTeapot, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var body errorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "teapot", body.Error)
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"pet not found", service.ErrPetNotFound, http.StatusNotFound},
		{"module not found", service.ErrModuleNotFound, http.StatusNotFound},
		{"pet exists", service.ErrPetAlreadyExists, http.StatusConflict},
		{"already claimed", service.ErrAlreadyClaimed, http.StatusConflict},
		{"badge minted", progress.ErrBadgeAlreadyMinted, http.StatusConflict},
		{"module locked", service.ErrModuleLocked, http.StatusForbidden},
		{"lessons incomplete", progress.ErrLessonsIncomplete, http.StatusForbidden},
		{"badge not earnable", progress.ErrBadgeNotEarnable, http.StatusForbidden},
		{"daily limit", service.ErrDailyLimitReached, http.StatusTooManyRequests},
		{"session expired", service.ErrSessionExpired, http.StatusUnauthorized},
		{"pet dead", pet.ErrPetDead, http.StatusBadRequest},
		{"low energy", pet.ErrInsufficientEnergy, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, statusForError(tt.err))
		})
	}
}

func TestStatusForWrappedError(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), service.ErrNoRevivalToken)
	assert.Equal(t, http.StatusBadRequest, statusForError(wrapped))
}
