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

// PlantRepository struct handles database operations related to plants.
type PlantRepository struct {
	collection *mongo.Collection
}

// NewPlantRepository creates a new instance of PlantRepository.
func NewPlantRepository(db *mongo.Database) *PlantRepository {
	return &PlantRepository{
		collection: db.Collection("plants"),
	}
}

// CreatePlant inserts a new plant record.
func (r *PlantRepository) CreatePlant(ctx context.Context, plant *models.Plant) (*models.Plant, error) {
	now := time.Now()
	plant.CreatedAt = now
	plant.UpdatedAt = now
	if plant.DatePlanted.IsZero() {
		plant.DatePlanted = now
	}

	result, err := r.collection.InsertOne(ctx, plant)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to insert plant")
		return nil, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		logger.Log.Error("Failed to cast inserted ID")
		return nil, err
	}
	plant.ID = insertedID

	logger.Log.WithField("plant_id", plant.ID.Hex()).Info("Plant created successfully")
	return plant, nil
}

// GetPlantByID fetches a plant by its ID.
func (r *PlantRepository) GetPlantByID(ctx context.Context, id primitive.ObjectID) (*models.Plant, error) {
	var plant models.Plant
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&plant)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.WithError(err).WithField("plant_id", id.Hex()).Error("Failed to find plant by ID")
		return nil, err
	}
	return &plant, nil
}

// GetAllPlants fetches all plants, newest planting first.
func (r *PlantRepository) GetAllPlants(ctx context.Context) ([]models.Plant, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date_planted", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch plants")
		return nil, err
	}
	defer cursor.Close(ctx)

	var plants []models.Plant
	for cursor.Next(ctx) {
		var plant models.Plant
		if err := cursor.Decode(&plant); err != nil {
			logger.Log.WithError(err).Error("Failed to decode plant")
			return nil, err
		}
		plants = append(plants, plant)
	}
	return plants, nil
}

// UpdatePlant applies a partial update and returns the new document state.
func (r *PlantRepository) UpdatePlant(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Plant, error) {
	update["updated_at"] = time.Now()

	var plant models.Plant
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&plant)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.WithError(err).WithField("plant_id", id.Hex()).Error("Failed to update plant")
		return nil, err
	}

	logger.Log.WithField("plant_id", id.Hex()).Info("Plant updated successfully")
	return &plant, nil
}

// DeletePlant deletes a plant by its ID.
func (r *PlantRepository) DeletePlant(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.Log.WithError(err).WithField("plant_id", id.Hex()).Error("Failed to delete plant")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	logger.Log.WithField("plant_id", id.Hex()).Info("Plant deleted successfully")
	return nil
}

// CountPlants counts all plant records.
func (r *PlantRepository) CountPlants(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
