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

// PostHandler handles the community feed endpoints.
type PostHandler struct {
	Service *services.PostService
}

// NewPostHandler creates a new instance of PostHandler.
func NewPostHandler(service *services.PostService) *PostHandler {
	return &PostHandler{
		Service: service,
	}
}

// GetPostsHandler returns the feed, newest first.
func (h *PostHandler) GetPostsHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Service.GetFeed(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch posts")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, posts)
}

// GetPostHandler fetches a single post by ID.
func (h *PostHandler) GetPostHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	post, err := h.Service.GetPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Post not found")
			return
		}
		logrus.WithError(err).Error("Failed to fetch post")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, post)
}

// CreatePostHandler stores a new post.
func (h *PostHandler) CreatePostHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID  string `json:"userId"`
		Content string `json:"content"`
		Image   string `json:"image"`
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

	post := &models.Post{
		UserID:  userID,
		Content: payload.Content,
		Image:   payload.Image,
	}

	created, err := h.Service.CreatePost(r.Context(), post)
	if err != nil {
		logrus.WithError(err).Warn("Failed to create post")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdatePostHandler merges content/image changes into an existing post.
func (h *PostHandler) UpdatePostHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	var payload struct {
		Content string `json:"content"`
		Image   string `json:"image"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	post, err := h.Service.UpdatePost(r.Context(), id, payload.Content, payload.Image)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Post not found")
			return
		}
		logrus.WithError(err).Error("Failed to update post")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, post)
}

// DeletePostHandler removes a post.
func (h *PostHandler) DeletePostHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	if err := h.Service.DeletePost(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Post not found")
			return
		}
		logrus.WithError(err).Error("Failed to delete post")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Post deleted"})
}

// LikePostHandler records a like; repeats by the same user are no-ops.
func (h *PostHandler) LikePostHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	postID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	var payload struct {
		UserID string `json:"userId"`
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

	post, err := h.Service.LikePost(r.Context(), postID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Post not found")
			return
		}
		logrus.WithError(err).Error("Failed to like post")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, post)
}

// CommentPostHandler appends a comment to a post.
func (h *PostHandler) CommentPostHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	postID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	var payload struct {
		UserID  string `json:"userId"`
		Content string `json:"content"`
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

	post, err := h.Service.CommentPost(r.Context(), postID, userID, payload.Content)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Post not found")
			return
		}
		logrus.WithError(err).Warn("Failed to comment on post")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, post)
}
