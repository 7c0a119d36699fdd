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

// PomodoroRepository struct handles database operations related to focus timers.
type PomodoroRepository struct {
	collection *mongo.Collection
}

// NewPomodoroRepository creates a new instance of PomodoroRepository.
func NewPomodoroRepository(db *mongo.Database) *PomodoroRepository {
	return &PomodoroRepository{
		collection: db.Collection("pomodoros"),
	}
}

// CreatePomodoro inserts a new pomodoro timer.
func (r *PomodoroRepository) CreatePomodoro(ctx context.Context, pomodoro *models.Pomodoro) (*models.Pomodoro, error) {
	now := time.Now()
	pomodoro.CreatedAt = now
	pomodoro.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, pomodoro)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to insert pomodoro")
		return nil, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		logger.Log.Error("Failed to cast inserted ID")
		return nil, err
	}
	pomodoro.ID = insertedID

	logger.Log.WithField("pomodoro_id", pomodoro.ID.Hex()).Info("Pomodoro created successfully")
	return pomodoro, nil
}

// GetPomodoroByID fetches a pomodoro by its ID.
func (r *PomodoroRepository) GetPomodoroByID(ctx context.Context, id primitive.ObjectID) (*models.Pomodoro, error) {
	var pomodoro models.Pomodoro
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&pomodoro)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.WithError(err).WithField("pomodoro_id", id.Hex()).Error("Failed to find pomodoro by ID")
		return nil, err
	}
	return &pomodoro, nil
}

// GetAllPomodoros fetches all pomodoros, newest first.
func (r *PomodoroRepository) GetAllPomodoros(ctx context.Context) ([]models.Pomodoro, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch pomodoros")
		return nil, err
	}
	defer cursor.Close(ctx)

	var pomodoros []models.Pomodoro
	for cursor.Next(ctx) {
		var pomodoro models.Pomodoro
		if err := cursor.Decode(&pomodoro); err != nil {
			logger.Log.WithError(err).Error("Failed to decode pomodoro")
			return nil, err
		}
		pomodoros = append(pomodoros, pomodoro)
	}
	return pomodoros, nil
}

// UpdatePomodoro applies a partial update and returns the new document state.
func (r *PomodoroRepository) UpdatePomodoro(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Pomodoro, error) {
	update["updated_at"] = time.Now()

	var pomodoro models.Pomodoro
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&pomodoro)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.WithError(err).WithField("pomodoro_id", id.Hex()).Error("Failed to update pomodoro")
		return nil, err
	}

	logger.Log.WithField("pomodoro_id", id.Hex()).Info("Pomodoro updated successfully")
	return &pomodoro, nil
}

// DeletePomodoro deletes a pomodoro by its ID.
func (r *PomodoroRepository) DeletePomodoro(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.Log.WithError(err).WithField("pomodoro_id", id.Hex()).Error("Failed to delete pomodoro")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	logger.Log.WithField("pomodoro_id", id.Hex()).Info("Pomodoro deleted successfully")
	return nil
}
