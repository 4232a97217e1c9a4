package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"cryptopet/internal/catalog"
	"cryptopet/internal/leaderboard"
	"cryptopet/internal/models"
	"cryptopet/internal/service"
)

// GameHandler handles minigame endpoints
type GameHandler struct {
	gameService *service.GameService
	board       *leaderboard.Board
}

// NewGameHandler creates a new game handler. board may be nil when no
// Redis backend is configured.
func NewGameHandler(gameService *service.GameService, board *leaderboard.Board) *GameHandler {
	return &GameHandler{gameService: gameService, board: board}
}

type gameListEntry struct {
	Config         *models.GameConfig `json:"config"`
	PlaysRemaining int                `json:"playsRemaining"`
}

// List returns every game with the user's remaining plays today
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	configs := catalog.GameConfigs()
	out := make([]gameListEntry, 0, len(configs))
	for i := range configs {
		remaining, err := h.gameService.PlaysRemaining(userID(r), configs[i].ID)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		out = append(out, gameListEntry{Config: &configs[i], PlaysRemaining: remaining})
	}
	respondJSON(w, http.StatusOK, out)
}

// Start consumes a daily play and deals questions for question games
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	start, err := h.gameService.StartGame(userID(r), r.PathValue("id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, start)
}

type finishRequest struct {
	Score   int                   `json:"score"`
	Details models.SessionDetails `json:"details"`
}

// Finish records a finished session and settles XP and high score
func (h *GameHandler) Finish(w http.ResponseWriter, r *http.Request) {
	var req finishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.gameService.FinishGame(userID(r), r.PathValue("id"), req.Score, req.Details)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// History returns the user's recent sessions, newest first
func (h *GameHandler) History(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	sessions, err := h.gameService.History(userID(r), limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sessions)
}

// Leaderboard returns the top entries for a game
func (h *GameHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	if h.board == nil {
		respondWithError(w, http.StatusServiceUnavailable, "leaderboard not configured", nil)
		return
	}

	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	entries, err := h.board.Top(r.Context(), r.PathValue("id"), limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to read leaderboard", err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

// Rank returns the user's rank on a game's leaderboard
func (h *GameHandler) Rank(w http.ResponseWriter, r *http.Request) {
	if h.board == nil {
		respondWithError(w, http.StatusServiceUnavailable, "leaderboard not configured", nil)
		return
	}

	rank, err := h.board.Rank(r.Context(), r.PathValue("id"), userID(r))
	if err != nil {
		if errors.Is(err, leaderboard.ErrNotRanked) {
			respondWithError(w, http.StatusNotFound, "not ranked", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to read rank", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int64{"rank": rank})
}
