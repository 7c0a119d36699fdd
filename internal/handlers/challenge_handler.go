package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/plantify-app/plantify-backend/internal/models"
	"github.com/plantify-app/plantify-backend/internal/repository"
	"github.com/plantify-app/plantify-backend/internal/services"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChallengeHandler handles community challenge endpoints.
type ChallengeHandler struct {
	Service *services.ChallengeService
}

// NewChallengeHandler creates a new instance of ChallengeHandler.
func NewChallengeHandler(service *services.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{
		Service: service,
	}
}

// GetChallengesHandler lists all challenges.
func (h *ChallengeHandler) GetChallengesHandler(w http.ResponseWriter, r *http.Request) {
	challenges, err := h.Service.GetChallenges(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch challenges")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, challenges)
}

// CreateChallengeHandler stores a new challenge (admin path).
func (h *ChallengeHandler) CreateChallengeHandler(w http.ResponseWriter, r *http.Request) {
	var challenge models.Challenge
	if err := json.NewDecoder(r.Body).Decode(&challenge); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	created, err := h.Service.CreateChallenge(r.Context(), &challenge)
	if err != nil {
		logrus.WithError(err).Warn("Failed to create challenge")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateChallengeHandler merges changes into an existing challenge (admin path).
func (h *ChallengeHandler) UpdateChallengeHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid challenge ID")
		return
	}

	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	challenge, err := h.Service.UpdateChallenge(r.Context(), id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Challenge not found")
			return
		}
		logrus.WithError(err).Warn("Failed to update challenge")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, challenge)
}

// DeleteChallengeHandler removes a challenge (admin path).
func (h *ChallengeHandler) DeleteChallengeHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid challenge ID")
		return
	}

	if err := h.Service.DeleteChallenge(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Challenge not found")
			return
		}
		logrus.WithError(err).Error("Failed to delete challenge")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Challenge deleted"})
}
