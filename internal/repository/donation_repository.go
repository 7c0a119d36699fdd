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

// DonationRepository struct handles database operations related to donations.
type DonationRepository struct {
	collection *mongo.Collection
}

// NewDonationRepository creates a new instance of DonationRepository.
func NewDonationRepository(db *mongo.Database) *DonationRepository {
	return &DonationRepository{
		collection: db.Collection("donations"),
	}
}

// CreateDonation inserts a new donation record.
func (r *DonationRepository) CreateDonation(ctx context.Context, donation *models.Donation) (*models.Donation, error) {
	now := time.Now()
	donation.CreatedAt = now
	donation.UpdatedAt = now
	if donation.Date.IsZero() {
		donation.Date = now
	}

	result, err := r.collection.InsertOne(ctx, donation)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to insert donation")
		return nil, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		logger.Log.Error("Failed to cast inserted ID")
		return nil, err
	}
	donation.ID = insertedID

	logger.Log.WithField("donation_id", donation.ID.Hex()).Info("Donation created successfully")
	return donation, nil
}

// GetDonations fetches donations, optionally filtered by owner.
func (r *DonationRepository) GetDonations(ctx context.Context, userID *primitive.ObjectID) ([]models.Donation, error) {
	filter := bson.M{}
	if userID != nil {
		filter["user_id"] = *userID
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch donations")
		return nil, err
	}
	defer cursor.Close(ctx)

	var donations []models.Donation
	for cursor.Next(ctx) {
		var donation models.Donation
		if err := cursor.Decode(&donation); err != nil {
			logger.Log.WithError(err).Error("Failed to decode donation")
			return nil, err
		}
		donations = append(donations, donation)
	}
	return donations, nil
}

// UpdateDonation applies a partial update and returns the new document state.
func (r *DonationRepository) UpdateDonation(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Donation, error) {
	update["updated_at"] = time.Now()

	var donation models.Donation
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&donation)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.WithError(err).WithField("donation_id", id.Hex()).Error("Failed to update donation")
		return nil, err
	}

	logger.Log.WithField("donation_id", id.Hex()).Info("Donation updated successfully")
	return &donation, nil
}

// DeleteDonation deletes a donation by its ID.
func (r *DonationRepository) DeleteDonation(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.Log.WithError(err).WithField("donation_id", id.Hex()).Error("Failed to delete donation")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	logger.Log.WithField("donation_id", id.Hex()).Info("Donation deleted successfully")
	return nil
}

// TotalAmount sums every recorded donation amount.
func (r *DonationRepository) TotalAmount(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var result struct {
		Total float64 `bson:"total"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, err
		}
	}
	return result.Total, nil
}
