package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/plantify-app/plantify-backend/internal/repository"
	"github.com/plantify-app/plantify-backend/internal/services"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionHandler handles the session-completion endpoint.
type SessionHandler struct {
	Service *services.SessionService
}

// NewSessionHandler creates a new instance of SessionHandler.
func NewSessionHandler(service *services.SessionService) *SessionHandler {
	return &SessionHandler{
		Service: service,
	}
}

// CompleteSessionHandler rewards a finished focus session with counters and a plant.
func (h *SessionHandler) CompleteSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req services.CompleteSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Failed to decode session completion request")
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if req.UserID == "" {
		respondError(w, http.StatusBadRequest, "userId is required")
		return
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		log.WithError(err).Warn("Invalid user ID in session completion")
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	resp, err := h.Service.CompleteSession(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		log.WithError(err).Error("Failed to complete session")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	log.WithField("userID", req.UserID).Info("Session completion handled")
	respondJSON(w, http.StatusOK, resp)
}
