package services

import (
	"context"
	"fmt"
	"time"

	"github.com/plantify-app/plantify-backend/internal/models"
	"github.com/plantify-app/plantify-backend/internal/repository"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostService encapsulates the community feed logic.
type PostService struct {
	repo     *repository.PostRepository
	userRepo *repository.UserRepository
}

// NewPostService creates a new instance of PostService.
func NewPostService(repo *repository.PostRepository, userRepo *repository.UserRepository) *PostService {
	return &PostService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// GetFeed returns all posts, newest first, enriched with author display data.
func (s *PostService) GetFeed(ctx context.Context) ([]models.PostView, error) {
	posts, err := s.repo.GetAllPosts(ctx)
	if err != nil {
		return nil, err
	}

	authorIDs := make([]primitive.ObjectID, 0, len(posts))
	seen := make(map[primitive.ObjectID]bool)
	for _, post := range posts {
		if !seen[post.UserID] {
			seen[post.UserID] = true
			authorIDs = append(authorIDs, post.UserID)
		}
	}

	authors := make(map[primitive.ObjectID]models.User)
	if len(authorIDs) > 0 {
		users, err := s.userRepo.GetUsersByIDs(ctx, authorIDs)
		if err != nil {
			logrus.WithError(err).Warn("Failed to enrich feed with authors")
		}
		for _, user := range users {
			authors[user.ID] = user
		}
	}

	views := make([]models.PostView, 0, len(posts))
	for _, post := range posts {
		view := models.PostView{Post: post}
		if author, ok := authors[post.UserID]; ok {
			view.AuthorName = author.Username
			view.AuthorAvatar = author.Avatar
		}
		views = append(views, view)
	}
	return views, nil
}

// GetPost fetches a single post with author enrichment.
func (s *PostService) GetPost(ctx context.Context, id primitive.ObjectID) (*models.PostView, error) {
	post, err := s.repo.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &models.PostView{Post: *post}
	if author, err := s.userRepo.GetUserByID(ctx, post.UserID); err == nil {
		view.AuthorName = author.Username
		view.AuthorAvatar = author.Avatar
	}
	return view, nil
}

// CreatePost validates and stores a new post.
func (s *PostService) CreatePost(ctx context.Context, post *models.Post) (*models.Post, error) {
	if post.UserID.IsZero() {
		return nil, fmt.Errorf("userId is required")
	}
	if post.Content == "" {
		return nil, fmt.Errorf("content is required")
	}

	post.Likes = nil
	post.Comments = nil
	return s.repo.CreatePost(ctx, post)
}

// UpdatePost merges content/image changes into an existing post.
func (s *PostService) UpdatePost(ctx context.Context, id primitive.ObjectID, content, image string) (*models.Post, error) {
	update := bson.M{}
	if content != "" {
		update["content"] = content
	}
	if image != "" {
		update["image"] = image
	}
	if len(update) == 0 {
		return nil, fmt.Errorf("nothing to update")
	}

	return s.repo.UpdatePost(ctx, id, update)
}

// DeletePost removes a post.
func (s *PostService) DeletePost(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.DeletePost(ctx, id)
}

// LikePost records a like; repeated likes by the same user are no-ops.
func (s *PostService) LikePost(ctx context.Context, postID, userID primitive.ObjectID) (*models.Post, error) {
	return s.repo.AddLike(ctx, postID, userID)
}

// CommentPost appends a comment to a post.
func (s *PostService) CommentPost(ctx context.Context, postID, userID primitive.ObjectID, content string) (*models.Post, error) {
	if content == "" {
		return nil, fmt.Errorf("content is required")
	}

	comment := models.Comment{
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	return s.repo.AddComment(ctx, postID, comment)
}
