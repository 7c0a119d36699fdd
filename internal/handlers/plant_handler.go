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

// PlantHandler handles HTTP requests related to planted trees.
type PlantHandler struct {
	Service *services.PlantService
}

// NewPlantHandler creates a new instance of PlantHandler.
func NewPlantHandler(service *services.PlantService) *PlantHandler {
	return &PlantHandler{
		Service: service,
	}
}

// GetPlantsHandler lists all plants for the map view.
func (h *PlantHandler) GetPlantsHandler(w http.ResponseWriter, r *http.Request) {
	plants, err := h.Service.GetPlants(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch plants")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, plants)
}

// GetPlantHandler fetches a single plant by ID.
func (h *PlantHandler) GetPlantHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid plant ID")
		return
	}

	plant, err := h.Service.GetPlant(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Plant not found")
			return
		}
		logrus.WithError(err).Error("Failed to fetch plant")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, plant)
}

// CreatePlantHandler stores a plant directly (admin path).
func (h *PlantHandler) CreatePlantHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID   string           `json:"userId"`
		Name     string           `json:"name"`
		Location *models.GeoPoint `json:"location"`
		Photo    string           `json:"photo"`
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

	plant := &models.Plant{
		UserID: userID,
		Name:   payload.Name,
		Photo:  payload.Photo,
	}
	if payload.Location != nil {
		plant.Location = *payload.Location
	} else {
		plant.Location = services.DefaultPlantLocation
	}

	created, err := h.Service.CreatePlant(r.Context(), plant)
	if err != nil {
		logrus.WithError(err).Warn("Failed to create plant")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdatePlantHandler merges changes into an existing plant (admin path).
func (h *PlantHandler) UpdatePlantHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid plant ID")
		return
	}

	var payload struct {
		Name     string           `json:"name"`
		Location *models.GeoPoint `json:"location"`
		Photo    string           `json:"photo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	plant, err := h.Service.UpdatePlant(r.Context(), id, payload.Name, payload.Location, payload.Photo)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Plant not found")
			return
		}
		logrus.WithError(err).Error("Failed to update plant")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, plant)
}

// DeletePlantHandler removes a plant (admin path).
func (h *PlantHandler) DeletePlantHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid plant ID")
		return
	}

	if err := h.Service.DeletePlant(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Plant not found")
			return
		}
		logrus.WithError(err).Error("Failed to delete plant")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Plant deleted"})
}
