package handlers

import (
	"encoding/json"
	"net/http"

	"cryptopet/internal/catalog"
	"cryptopet/internal/models"
	"cryptopet/internal/service"
)

// PetHandler handles pet lifecycle endpoints
type PetHandler struct {
	petService *service.PetService
}

// NewPetHandler creates a new pet handler
func NewPetHandler(petService *service.PetService) *PetHandler {
	return &PetHandler{petService: petService}
}

type createPetRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Create creates the user's pet
func (h *PetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Name == "" {
		respondWithError(w, http.StatusBadRequest, "name is required", nil)
		return
	}

	p, err := h.petService.CreatePet(userID(r), req.Name, models.PetType(req.Type))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, p)
}

// Get returns the pet with decay applied up to now
func (h *PetHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.petService.GetPet(userID(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// Action applies a care action named in the path: feed, play, rest, heal
func (h *PetHandler) Action(w http.ResponseWriter, r *http.Request) {
	var p *models.Pet
	var err error

	switch action := r.PathValue("action"); action {
	case "feed":
		p, err = h.petService.Feed(userID(r))
	case "play":
		p, err = h.petService.Play(userID(r))
	case "rest":
		p, err = h.petService.Rest(userID(r))
	case "heal":
		p, err = h.petService.Heal(userID(r))
	default:
		respondWithError(w, http.StatusBadRequest, "unknown action: "+action, nil)
		return
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

type reviveRequest struct {
	UseFreeRevival bool `json:"useFreeRevival"`
}

// Revive brings a dead pet back, either with the one-time free revival
// or by consuming a revival token
func (h *PetHandler) Revive(w http.ResponseWriter, r *http.Request) {
	var req reviveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	p, err := h.petService.Revive(userID(r), req.UseFreeRevival)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// UseItem consumes an inventory item on the pet
func (h *PetHandler) UseItem(w http.ResponseWriter, r *http.Request) {
	item, ok := catalog.ItemByID(r.PathValue("itemID"))
	if !ok {
		respondWithError(w, http.StatusNotFound, "item not found", nil)
		return
	}

	p, err := h.petService.UseConsumable(userID(r), item)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// EquipItem equips an owned skin or environment
func (h *PetHandler) EquipItem(w http.ResponseWriter, r *http.Request) {
	item, ok := catalog.ItemByID(r.PathValue("itemID"))
	if !ok {
		respondWithError(w, http.StatusNotFound, "item not found", nil)
		return
	}

	p, err := h.petService.Equip(userID(r), item)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}
