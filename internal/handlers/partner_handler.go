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

// PartnerHandler handles partner organization endpoints.
type PartnerHandler struct {
	Service *services.PartnerService
}

// NewPartnerHandler creates a new instance of PartnerHandler.
func NewPartnerHandler(service *services.PartnerService) *PartnerHandler {
	return &PartnerHandler{
		Service: service,
	}
}

// GetPartnersHandler lists all partners.
func (h *PartnerHandler) GetPartnersHandler(w http.ResponseWriter, r *http.Request) {
	partners, err := h.Service.GetPartners(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch partners")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, partners)
}

// GetPartnerHandler fetches a partner by ID.
func (h *PartnerHandler) GetPartnerHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid partner ID")
		return
	}

	partner, err := h.Service.GetPartner(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Partner not found")
			return
		}
		logrus.WithError(err).Error("Failed to fetch partner")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, partner)
}

// CreatePartnerHandler stores a new partner (admin path).
func (h *PartnerHandler) CreatePartnerHandler(w http.ResponseWriter, r *http.Request) {
	var partner models.Partner
	if err := json.NewDecoder(r.Body).Decode(&partner); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	created, err := h.Service.CreatePartner(r.Context(), &partner)
	if err != nil {
		logrus.WithError(err).Warn("Failed to create partner")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdatePartnerHandler merges changes into an existing partner (admin path).
func (h *PartnerHandler) UpdatePartnerHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid partner ID")
		return
	}

	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	partner, err := h.Service.UpdatePartner(r.Context(), id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Partner not found")
			return
		}
		logrus.WithError(err).Warn("Failed to update partner")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, partner)
}

// DeletePartnerHandler removes a partner (admin path).
func (h *PartnerHandler) DeletePartnerHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid partner ID")
		return
	}

	if err := h.Service.DeletePartner(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Partner not found")
			return
		}
		logrus.WithError(err).Error("Failed to delete partner")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Partner deleted"})
}
