package handlers

import (
	"net/http"

	"cryptopet/internal/service"
)

// RewardHandler handles badge, daily reward and inventory endpoints
type RewardHandler struct {
	rewardService *service.RewardService
}

// NewRewardHandler creates a new reward handler
func NewRewardHandler(rewardService *service.RewardService) *RewardHandler {
	return &RewardHandler{rewardService: rewardService}
}

// MintBadge mints a completed module's badge to the user's wallet
func (h *RewardHandler) MintBadge(w http.ResponseWriter, r *http.Request) {
	result, err := h.rewardService.MintBadge(r.Context(), userID(r), r.PathValue("id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadGateway
	}
	respondJSON(w, status, result)
}

// Badges lists the user's minted badges
func (h *RewardHandler) Badges(w http.ResponseWriter, r *http.Request) {
	badges, err := h.rewardService.Badges(userID(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, badges)
}

// ClaimDaily claims the daily streak reward
func (h *RewardHandler) ClaimDaily(w http.ResponseWriter, r *http.Request) {
	claim, err := h.rewardService.ClaimDaily(userID(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, claim)
}

// Inventory lists the user's items
func (h *RewardHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.rewardService.Inventory(userID(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}
