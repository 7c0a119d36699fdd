package handlers

import (
	"errors"
	"net/http"

	"github.com/plantify-app/plantify-backend/internal/models"
	"github.com/plantify-app/plantify-backend/internal/repository"
	"github.com/plantify-app/plantify-backend/internal/services"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// maxUploadBytes caps multipart memory before spilling to temp files.
const maxUploadBytes = 10 << 20

// UploadHandler handles image and file upload endpoints.
type UploadHandler struct {
	Service *services.FileService
}

// NewUploadHandler creates a new instance of UploadHandler.
func NewUploadHandler(service *services.FileService) *UploadHandler {
	return &UploadHandler{
		Service: service,
	}
}

// UploadImageHandler accepts a single multipart "image" field and returns
// the storage URL and public ID.
func (h *UploadHandler) UploadImageHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No image file provided")
		return
	}
	defer file.Close()

	result, err := h.Service.UploadImage(r.Context(), file)
	if err != nil {
		logrus.WithError(err).Error("Image upload failed")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"url":       result.URL,
		"public_id": result.PublicID,
	})
}

// UploadFilesHandler accepts one or more multipart "files" entries,
// stores each and records it in the files collection.
func (h *UploadHandler) UploadFilesHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		respondError(w, http.StatusBadRequest, "No files provided")
		return
	}

	uploaded := make([]*models.File, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			respondError(w, http.StatusBadRequest, "Unable to read uploaded file")
			return
		}

		record, err := h.Service.UploadFile(r.Context(), header.Filename, file)
		file.Close()
		if err != nil {
			logrus.WithError(err).WithField("file", header.Filename).Error("File upload failed")
			respondError(w, http.StatusInternalServerError, "Server error")
			return
		}
		uploaded = append(uploaded, record)
	}

	respondJSON(w, http.StatusCreated, uploaded)
}

// GetFileHandler fetches an upload record by ID.
func (h *UploadHandler) GetFileHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid file ID")
		return
	}

	file, err := h.Service.GetFile(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "File not found")
			return
		}
		logrus.WithError(err).Error("Failed to fetch file record")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, file)
}
