package repository

import (
	"context"
	"time"

	"github.com/plantify-app/plantify-backend/internal/models"
	"github.com/plantify-app/plantify-backend/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostRepository struct handles database operations related to feed posts.
type PostRepository struct {
	collection *mongo.Collection
}

// NewPostRepository creates a new instance of PostRepository.
func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{
		collection: db.Collection("posts"),
	}
}

// CreatePost inserts a new post.
func (r *PostRepository) CreatePost(ctx context.Context, post *models.Post) (*models.Post, error) {
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, post)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to insert post")
		return nil, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		logger.Log.Error("Failed to cast inserted ID")
		return nil, err
	}
	post.ID = insertedID

	logger.Log.WithField("post_id", post.ID.Hex()).Info("Post created successfully")
	return post, nil
}

// GetPostByID fetches a post by its ID.
func (r *PostRepository) GetPostByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var post models.Post
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.WithError(err).WithField("post_id", id.Hex()).Error("Failed to find post by ID")
		return nil, err
	}
	return &post, nil
}

// GetAllPosts fetches the feed, newest first.
func (r *PostRepository) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch posts")
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	for cursor.Next(ctx) {
		var post models.Post
		if err := cursor.Decode(&post); err != nil {
			logger.Log.WithError(err).Error("Failed to decode post")
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// UpdatePost applies a partial update and returns the new document state.
func (r *PostRepository) UpdatePost(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Post, error) {
	update["updated_at"] = time.Now()

	var post models.Post
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.WithError(err).WithField("post_id", id.Hex()).Error("Failed to update post")
		return nil, err
	}

	logger.Log.WithField("post_id", id.Hex()).Info("Post updated successfully")
	return &post, nil
}

// DeletePost deletes a post by its ID.
func (r *PostRepository) DeletePost(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.Log.WithError(err).WithField("post_id", id.Hex()).Error("Failed to delete post")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	logger.Log.WithField("post_id", id.Hex()).Info("Post deleted successfully")
	return nil
}

// AddLike records a like with set semantics, so repeats are no-ops.
func (r *PostRepository) AddLike(ctx context.Context, postID, userID primitive.ObjectID) (*models.Post, error) {
	var post models.Post
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": postID},
		bson.M{
			"$addToSet": bson.M{"likes": userID}, // avoid duplicates
			"$set":      bson.M{"updated_at": time.Now()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.WithError(err).WithFields(map[string]interface{}{
			"post_id": postID.Hex(),
			"user_id": userID.Hex(),
		}).Error("Failed to like post")
		return nil, err
	}
	return &post, nil
}

// AddComment appends a comment to a post.
func (r *PostRepository) AddComment(ctx context.Context, postID primitive.ObjectID, comment models.Comment) (*models.Post, error) {
	var post models.Post
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": postID},
		bson.M{
			"$push": bson.M{"comments": comment},
			"$set":  bson.M{"updated_at": time.Now()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.WithError(err).WithField("post_id", postID.Hex()).Error("Failed to comment on post")
		return nil, err
	}
	return &post, nil
}
