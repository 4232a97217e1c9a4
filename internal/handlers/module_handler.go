package handlers

import (
	"encoding/json"
	"net/http"

	"cryptopet/internal/service"
)

// ModuleHandler handles learning module endpoints
type ModuleHandler struct {
	progressService *service.ProgressService
}

// NewModuleHandler creates a new module handler
func NewModuleHandler(progressService *service.ProgressService) *ModuleHandler {
	return &ModuleHandler{progressService: progressService}
}

// List returns all modules with the user's progress overlay
func (h *ModuleHandler) List(w http.ResponseWriter, r *http.Request) {
	overviews, err := h.progressService.Overview(userID(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, overviews)
}

// Get returns one module with the user's progress
func (h *ModuleHandler) Get(w http.ResponseWriter, r *http.Request) {
	overview, err := h.progressService.ModuleProgress(userID(r), r.PathValue("id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, overview)
}

// CompleteLesson marks a lesson as completed
func (h *ModuleHandler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	rec, err := h.progressService.CompleteLesson(userID(r), r.PathValue("id"), r.PathValue("lessonID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

type quizSubmission struct {
	Answers []int `json:"answers"`
}

// SubmitQuiz grades a module quiz attempt
func (h *ModuleHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	var req quizSubmission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.progressService.SubmitQuiz(userID(r), r.PathValue("id"), req.Answers)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

type practiceSubmission struct {
	TxHash string `json:"txHash"`
}

// CompletePractice records a validated practice transaction
func (h *ModuleHandler) CompletePractice(w http.ResponseWriter, r *http.Request) {
	var req practiceSubmission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	rec, err := h.progressService.CompletePractice(userID(r), r.PathValue("id"), req.TxHash)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}
