package repository

import (
	"context"
	"time"

	"github.com/plantify-app/plantify-backend/internal/models"
	"github.com/plantify-app/plantify-backend/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FileRepository struct handles database records of uploaded assets.
type FileRepository struct {
	collection *mongo.Collection
}

// NewFileRepository creates a new instance of FileRepository.
func NewFileRepository(db *mongo.Database) *FileRepository {
	return &FileRepository{
		collection: db.Collection("files"),
	}
}

// CreateFile inserts a new file record.
func (r *FileRepository) CreateFile(ctx context.Context, file *models.File) (*models.File, error) {
	file.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, file)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to insert file record")
		return nil, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		logger.Log.Error("Failed to cast inserted ID")
		return nil, err
	}
	file.ID = insertedID

	logger.Log.WithField("file_id", file.ID.Hex()).Info("File record created successfully")
	return file, nil
}

// GetFileByID fetches a file record by its ID.
func (r *FileRepository) GetFileByID(ctx context.Context, id primitive.ObjectID) (*models.File, error) {
	var file models.File
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&file)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.WithError(err).WithField("file_id", id.Hex()).Error("Failed to find file by ID")
		return nil, err
	}
	return &file, nil
}
