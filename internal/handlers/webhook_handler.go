package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"cryptopet/internal/logger"
	"cryptopet/internal/service"
)

// WebhookHandler receives chain-side notifications from the transaction
// watcher, which validates practice transactions before calling in
type WebhookHandler struct {
	progressService *service.ProgressService
	secret          string
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(progressService *service.ProgressService, secret string) *WebhookHandler {
	return &WebhookHandler{progressService: progressService, secret: secret}
}

type practiceWebhook struct {
	UserID   string `json:"userId"`
	ModuleID string `json:"moduleId"`
	TxHash   string `json:"txHash"`
}

// PracticeCompleted records an externally validated practice transaction
func (h *WebhookHandler) PracticeCompleted(w http.ResponseWriter, r *http.Request) {
	if h.secret == "" || subtle.ConstantTimeCompare([]byte(r.Header.Get("X-Webhook-Secret")), []byte(h.secret)) != 1 {
		respondWithError(w, http.StatusUnauthorized, "invalid webhook secret", nil)
		return
	}

	var payload practiceWebhook
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if payload.UserID == "" || payload.ModuleID == "" || payload.TxHash == "" {
		respondWithError(w, http.StatusBadRequest, "userId, moduleId and txHash are required", nil)
		return
	}

	rec, err := h.progressService.CompletePractice(payload.UserID, payload.ModuleID, payload.TxHash)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	logger.Logger.Info("practice completed via webhook",
		zap.String("user_id", payload.UserID),
		zap.String("module_id", payload.ModuleID),
		zap.String("tx_hash", payload.TxHash))
	respondJSON(w, http.StatusOK, rec)
}
