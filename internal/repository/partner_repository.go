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

// PartnerRepository struct handles database operations related to partners.
type PartnerRepository struct {
	collection *mongo.Collection
}

// NewPartnerRepository creates a new instance of PartnerRepository.
func NewPartnerRepository(db *mongo.Database) *PartnerRepository {
	return &PartnerRepository{
		collection: db.Collection("partners"),
	}
}

// CreatePartner inserts a new partner.
func (r *PartnerRepository) CreatePartner(ctx context.Context, partner *models.Partner) (*models.Partner, error) {
	now := time.Now()
	partner.CreatedAt = now
	partner.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, partner)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to insert partner")
		return nil, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		logger.Log.Error("Failed to cast inserted ID")
		return nil, err
	}
	partner.ID = insertedID

	logger.Log.WithField("partner_id", partner.ID.Hex()).Info("Partner created successfully")
	return partner, nil
}

// GetPartnerByID fetches a partner by its ID.
func (r *PartnerRepository) GetPartnerByID(ctx context.Context, id primitive.ObjectID) (*models.Partner, error) {
	var partner models.Partner
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&partner)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.WithError(err).WithField("partner_id", id.Hex()).Error("Failed to find partner by ID")
		return nil, err
	}
	return &partner, nil
}

// GetAllPartners fetches all partners.
func (r *PartnerRepository) GetAllPartners(ctx context.Context) ([]models.Partner, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch partners")
		return nil, err
	}
	defer cursor.Close(ctx)

	var partners []models.Partner
	for cursor.Next(ctx) {
		var partner models.Partner
		if err := cursor.Decode(&partner); err != nil {
			logger.Log.WithError(err).Error("Failed to decode partner")
			return nil, err
		}
		partners = append(partners, partner)
	}
	return partners, nil
}

// UpdatePartner applies a partial update and returns the new document state.
func (r *PartnerRepository) UpdatePartner(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Partner, error) {
	update["updated_at"] = time.Now()

	var partner models.Partner
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&partner)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.WithError(err).WithField("partner_id", id.Hex()).Error("Failed to update partner")
		return nil, err
	}

	logger.Log.WithField("partner_id", id.Hex()).Info("Partner updated successfully")
	return &partner, nil
}

// DeletePartner deletes a partner by its ID.
func (r *PartnerRepository) DeletePartner(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.Log.WithError(err).WithField("partner_id", id.Hex()).Error("Failed to delete partner")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	logger.Log.WithField("partner_id", id.Hex()).Info("Partner deleted successfully")
	return nil
}
