package services

import (
	"context"
	"fmt"

	"github.com/plantify-app/plantify-backend/internal/models"
	"github.com/plantify-app/plantify-backend/internal/repository"
	"github.com/plantify-app/plantify-backend/pkg/email"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DonationService records pledges towards partner causes. Donations are
// recorded, never charged.
type DonationService struct {
	repo     *repository.DonationRepository
	userRepo *repository.UserRepository
}

// NewDonationService creates a new instance of DonationService.
func NewDonationService(repo *repository.DonationRepository, userRepo *repository.UserRepository) *DonationService {
	return &DonationService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// GetDonations lists donations, optionally scoped to one user.
func (s *DonationService) GetDonations(ctx context.Context, userID *primitive.ObjectID) ([]models.Donation, error) {
	return s.repo.GetDonations(ctx, userID)
}

// CreateDonation validates and records a donation, then sends a best-effort
// thank-you email. Email failures never fail the donation.
func (s *DonationService) CreateDonation(ctx context.Context, donation *models.Donation) (*models.Donation, error) {
	if donation.UserID.IsZero() {
		return nil, fmt.Errorf("userId is required")
	}
	if donation.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	if donation.Cause == "" {
		return nil, fmt.Errorf("cause is required")
	}

	created, err := s.repo.CreateDonation(ctx, donation)
	if err != nil {
		return nil, err
	}

	if user, err := s.userRepo.GetUserByID(ctx, donation.UserID); err == nil && user.Email != "" {
		body := fmt.Sprintf("Thank you for donating %.2f to %s!", created.Amount, created.Cause)
		if err := email.SendEmail(user.Email, "Thank you for your donation", body); err != nil {
			logrus.WithError(err).Warn("Failed to send donation thank-you email")
		}
	}

	return created, nil
}

// UpdateDonation merges amount/cause changes into an existing donation.
func (s *DonationService) UpdateDonation(ctx context.Context, id primitive.ObjectID, amount float64, cause string) (*models.Donation, error) {
	update := bson.M{}
	if amount > 0 {
		update["amount"] = amount
	}
	if cause != "" {
		update["cause"] = cause
	}
	if len(update) == 0 {
		return nil, fmt.Errorf("nothing to update")
	}

	return s.repo.UpdateDonation(ctx, id, update)
}

// DeleteDonation removes a donation record.
func (s *DonationService) DeleteDonation(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.DeleteDonation(ctx, id)
}
