package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"cryptopet/internal/logger"
	"cryptopet/internal/pet"
	"cryptopet/internal/progress"
	"cryptopet/internal/security"
	"cryptopet/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Logger.Error("failed to encode response", zap.Error(err))
	}
}

func respondWithError(w http.ResponseWriter, status int, userMsg string, err error) {
	if err != nil && status >= http.StatusInternalServerError {
		logger.Logger.Error(userMsg, zap.Error(err))
	}
	respondJSON(w, status, errorResponse{Error: userMsg})
}

// respondServiceError translates service sentinel errors to status codes
func respondServiceError(w http.ResponseWriter, err error) {
	respondWithError(w, statusForError(err), err.Error(), err)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrPetNotFound),
		errors.Is(err, service.ErrModuleNotFound),
		errors.Is(err, service.ErrGameNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, progress.ErrLessonNotInModule):
		return http.StatusNotFound
	case errors.Is(err, service.ErrPetAlreadyExists),
		errors.Is(err, service.ErrAlreadyClaimed),
		errors.Is(err, progress.ErrBadgeAlreadyMinted):
		return http.StatusConflict
	case errors.Is(err, service.ErrModuleLocked),
		errors.Is(err, progress.ErrLessonsIncomplete),
		errors.Is(err, progress.ErrBadgeNotEarnable):
		return http.StatusForbidden
	case errors.Is(err, service.ErrDailyLimitReached):
		return http.StatusTooManyRequests
	case errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrSessionExpired),
		errors.Is(err, service.ErrInvalidRefreshToken):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrInvalidPetType),
		errors.Is(err, service.ErrInvalidAddress),
		errors.Is(err, service.ErrInvalidWalletType),
		errors.Is(err, service.ErrAnswerCount),
		errors.Is(err, service.ErrPetAlive),
		errors.Is(err, service.ErrNoRevivalToken),
		errors.Is(err, service.ErrItemNotOwnedByUser),
		errors.Is(err, service.ErrItemNotEquippable),
		errors.Is(err, service.ErrItemNotConsumable),
		errors.Is(err, pet.ErrPetDead),
		errors.Is(err, pet.ErrInsufficientEnergy),
		errors.Is(err, pet.ErrFreeRevivalUsed),
		errors.Is(err, progress.ErrNoPracticeTask):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
