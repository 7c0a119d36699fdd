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

// DonationHandler handles donation recording endpoints.
type DonationHandler struct {
	Service *services.DonationService
}

// NewDonationHandler creates a new instance of DonationHandler.
func NewDonationHandler(service *services.DonationService) *DonationHandler {
	return &DonationHandler{
		Service: service,
	}
}

// GetDonationsHandler lists donations, optionally filtered by userId.
func (h *DonationHandler) GetDonationsHandler(w http.ResponseWriter, r *http.Request) {
	var userID *primitive.ObjectID
	if raw := r.URL.Query().Get("userId"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid user ID")
			return
		}
		userID = &id
	}

	donations, err := h.Service.GetDonations(r.Context(), userID)
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch donations")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, donations)
}

// CreateDonationHandler records a new donation.
func (h *DonationHandler) CreateDonationHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID string  `json:"userId"`
		Amount float64 `json:"amount"`
		Cause  string  `json:"cause"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	userID, err := primitive.ObjectIDFromHex(payload.UserID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	donation := &models.Donation{
		UserID: userID,
		Amount: payload.Amount,
		Cause:  payload.Cause,
	}

	created, err := h.Service.CreateDonation(r.Context(), donation)
	if err != nil {
		logrus.WithError(err).Warn("Failed to create donation")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateDonationHandler merges changes into an existing donation (admin path).
func (h *DonationHandler) UpdateDonationHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid donation ID")
		return
	}

	var payload struct {
		Amount float64 `json:"amount"`
		Cause  string  `json:"cause"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	donation, err := h.Service.UpdateDonation(r.Context(), id, payload.Amount, payload.Cause)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Donation not found")
			return
		}
		logrus.WithError(err).Error("Failed to update donation")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, donation)
}

// DeleteDonationHandler removes a donation record (admin path).
func (h *DonationHandler) DeleteDonationHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid donation ID")
		return
	}

	if err := h.Service.DeleteDonation(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Donation not found")
			return
		}
		logrus.WithError(err).Error("Failed to delete donation")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Donation deleted"})
}
