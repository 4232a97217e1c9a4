package handlers

import (
	"encoding/json"
	"net/http"

	"cryptopet/internal/models"
	"cryptopet/internal/service"
)

// AuthHandler handles login, token refresh and profile endpoints
type AuthHandler struct {
	authService *service.AuthService
	oauth       *OAuthFlow
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, oauth *OAuthFlow) *AuthHandler {
	return &AuthHandler{authService: authService, oauth: oauth}
}

type loginRequest struct {
	Address     string `json:"address"`
	WalletType  string `json:"walletType"`
	DisplayName string `json:"displayName"`
}

type loginResponse struct {
	User   *models.User        `json:"user"`
	Tokens *service.AuthTokens `json:"tokens"`
}

// Login authenticates a wallet address and issues tokens
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	user, tokens, err := h.authService.Login(req.Address, models.WalletType(req.WalletType), req.DisplayName)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{User: user, Tokens: tokens})
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Refresh trades a refresh token for a new access token
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	tokens, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tokens)
}

// Logout revokes the refresh session
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.authService.Logout(req.RefreshToken); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.GetUser(userID(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

type updateProfileRequest struct {
	DisplayName string  `json:"displayName"`
	Email       *string `json:"email"`
}

// UpdateProfile updates display name and email
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	user, err := h.authService.UpdateProfile(userID(r), req.DisplayName, req.Email)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// StartEmailLink begins the OAuth flow that attaches a verified email
// to the account
func (h *AuthHandler) StartEmailLink(w http.ResponseWriter, r *http.Request) {
	if h.oauth == nil {
		respondWithError(w, http.StatusServiceUnavailable, "email linking not configured", nil)
		return
	}
	h.oauth.start(w, r, userID(r))
}

// EmailLinkCallback completes the OAuth flow and stores the email
func (h *AuthHandler) EmailLinkCallback(w http.ResponseWriter, r *http.Request) {
	if h.oauth == nil {
		respondWithError(w, http.StatusServiceUnavailable, "email linking not configured", nil)
		return
	}
	h.oauth.callback(w, r)
}
