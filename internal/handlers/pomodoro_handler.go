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

// PomodoroHandler handles the focus-timer endpoints. Responses use the
// {success, message, data} envelope this resource family has always had.
type PomodoroHandler struct {
	Service *services.PomodoroService
}

// NewPomodoroHandler creates a new instance of PomodoroHandler.
func NewPomodoroHandler(service *services.PomodoroService) *PomodoroHandler {
	return &PomodoroHandler{
		Service: service,
	}
}

type pomodoroResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func (h *PomodoroHandler) respond(w http.ResponseWriter, status int, message string, data interface{}) {
	respondJSON(w, status, pomodoroResponse{Success: status < 400, Message: message, Data: data})
}

// CreatePomodoroHandler creates a new timer.
func (h *PomodoroHandler) CreatePomodoroHandler(w http.ResponseWriter, r *http.Request) {
	var pomodoro models.Pomodoro
	if err := json.NewDecoder(r.Body).Decode(&pomodoro); err != nil {
		logrus.WithError(err).Warn("Invalid pomodoro payload")
		h.respond(w, http.StatusBadRequest, "Invalid request payload", nil)
		return
	}
	defer r.Body.Close()

	created, err := h.Service.CreatePomodoro(r.Context(), &pomodoro)
	if err != nil {
		logrus.WithError(err).Warn("Failed to create pomodoro")
		h.respond(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	h.respond(w, http.StatusCreated, "", created)
}

// GetAllPomodorosHandler lists every timer.
func (h *PomodoroHandler) GetAllPomodorosHandler(w http.ResponseWriter, r *http.Request) {
	pomodoros, err := h.Service.GetAllPomodoros(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch pomodoros")
		h.respond(w, http.StatusInternalServerError, "Error fetching sessions", nil)
		return
	}
	h.respond(w, http.StatusOK, "", pomodoros)
}

// StartPomodoroHandler moves a timer to running.
func (h *PomodoroHandler) StartPomodoroHandler(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.PomodoroStatusRunning, "Pomodoro started")
}

// PausePomodoroHandler moves a timer to paused.
func (h *PomodoroHandler) PausePomodoroHandler(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.PomodoroStatusPaused, "Pomodoro paused")
}

// ResumePomodoroHandler moves a timer back to running.
func (h *PomodoroHandler) ResumePomodoroHandler(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.PomodoroStatusRunning, "Pomodoro resumed")
}

func (h *PomodoroHandler) setStatus(w http.ResponseWriter, r *http.Request, status, message string) {
	vars := mux.Vars(r)

	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		h.respond(w, http.StatusBadRequest, "Invalid session ID", nil)
		return
	}

	session, err := h.Service.SetStatus(r.Context(), id, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.respond(w, http.StatusNotFound, "Session not found", nil)
			return
		}
		logrus.WithError(err).Error("Failed to update pomodoro status")
		h.respond(w, http.StatusInternalServerError, "Failed to update session", nil)
		return
	}
	h.respond(w, http.StatusOK, message, session)
}

// CompleteRoundHandler advances the round counter, finishing the timer when done.
func (h *PomodoroHandler) CompleteRoundHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		h.respond(w, http.StatusBadRequest, "Invalid session ID", nil)
		return
	}

	session, err := h.Service.CompleteRound(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.respond(w, http.StatusNotFound, "Session not found", nil)
			return
		}
		logrus.WithError(err).Error("Failed to complete round")
		h.respond(w, http.StatusInternalServerError, "Error completing round", nil)
		return
	}
	h.respond(w, http.StatusOK, "Round completed", session)
}

// DeletePomodoroHandler removes a timer.
func (h *PomodoroHandler) DeletePomodoroHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		h.respond(w, http.StatusBadRequest, "Invalid session ID", nil)
		return
	}

	if err := h.Service.DeletePomodoro(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.respond(w, http.StatusNotFound, "Session not found", nil)
			return
		}
		logrus.WithError(err).Error("Failed to delete pomodoro")
		h.respond(w, http.StatusInternalServerError, "Error deleting session", nil)
		return
	}
	h.respond(w, http.StatusOK, "Pomodoro deleted", nil)
}
