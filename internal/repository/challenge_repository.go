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

// ChallengeRepository struct handles database operations related to challenges.
type ChallengeRepository struct {
	collection *mongo.Collection
}

// NewChallengeRepository creates a new instance of ChallengeRepository.
func NewChallengeRepository(db *mongo.Database) *ChallengeRepository {
	return &ChallengeRepository{
		collection: db.Collection("challenges"),
	}
}

// CreateChallenge inserts a new challenge.
func (r *ChallengeRepository) CreateChallenge(ctx context.Context, challenge *models.Challenge) (*models.Challenge, error) {
	now := time.Now()
	challenge.CreatedAt = now
	challenge.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, challenge)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to insert challenge")
		return nil, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		logger.Log.Error("Failed to cast inserted ID")
		return nil, err
	}
	challenge.ID = insertedID

	logger.Log.WithField("challenge_id", challenge.ID.Hex()).Info("Challenge created successfully")
	return challenge, nil
}

// GetAllChallenges fetches all challenges.
func (r *ChallengeRepository) GetAllChallenges(ctx context.Context) ([]models.Challenge, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch challenges")
		return nil, err
	}
	defer cursor.Close(ctx)

	var challenges []models.Challenge
	for cursor.Next(ctx) {
		var challenge models.Challenge
		if err := cursor.Decode(&challenge); err != nil {
			logger.Log.WithError(err).Error("Failed to decode challenge")
			return nil, err
		}
		challenges = append(challenges, challenge)
	}
	return challenges, nil
}

// UpdateChallenge applies a partial update and returns the new document state.
func (r *ChallengeRepository) UpdateChallenge(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Challenge, error) {
	update["updated_at"] = time.Now()

	var challenge models.Challenge
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&challenge)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.WithError(err).WithField("challenge_id", id.Hex()).Error("Failed to update challenge")
		return nil, err
	}

	logger.Log.WithField("challenge_id", id.Hex()).Info("Challenge updated successfully")
	return &challenge, nil
}

// DeleteChallenge deletes a challenge by its ID.
func (r *ChallengeRepository) DeleteChallenge(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.Log.WithError(err).WithField("challenge_id", id.Hex()).Error("Failed to delete challenge")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	logger.Log.WithField("challenge_id", id.Hex()).Info("Challenge deleted successfully")
	return nil
}
