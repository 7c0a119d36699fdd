package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/plantify-app/plantify-backend/internal/repository"
	"github.com/plantify-app/plantify-backend/internal/services"
	"github.com/plantify-app/plantify-backend/pkg/logger"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminHandler handles the dashboard and user administration endpoints.
type AdminHandler struct {
	Service     *services.AdminService
	UserService *services.UserService
}

// NewAdminHandler creates a new instance of AdminHandler.
func NewAdminHandler(service *services.AdminService, userService *services.UserService) *AdminHandler {
	return &AdminHandler{
		Service:     service,
		UserService: userService,
	}
}

// GetStatsHandler returns the dashboard headline numbers.
func (h *AdminHandler) GetStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.GetStats(r.Context())
	if err != nil {
		logger.Log.WithError(err).Error("Failed to compute admin stats")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// GetAnalyticsHandler returns engagement aggregates.
func (h *AdminHandler) GetAnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.Service.GetAnalytics(r.Context())
	if err != nil {
		logger.Log.WithError(err).Error("Failed to compute analytics")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, analytics)
}

// GetAllUsersHandler lists every account, soft-deleted ones included.
func (h *AdminHandler) GetAllUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.GetAllUsers(r.Context(), true)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch users for admin")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// UpdateUserRoleHandler changes a user's role.
func (h *AdminHandler) UpdateUserRoleHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	userID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var payload struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	user, err := h.UserService.UpdateUserRole(r.Context(), userID, payload.Role)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		logger.Log.WithError(err).Warn("Failed to update user role")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	logger.Log.WithFields(map[string]interface{}{
		"userID": userID.Hex(),
		"role":   payload.Role,
	}).Info("User role updated")
	respondJSON(w, http.StatusOK, user)
}

// HardDeleteUserHandler removes a user document permanently.
func (h *AdminHandler) HardDeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	userID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := h.UserService.HardDeleteUser(r.Context(), userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		logger.Log.WithError(err).Error("Failed to hard delete user")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "User deleted"})
}
