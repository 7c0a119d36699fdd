package services

import (
	"context"
	"fmt"

	"github.com/plantify-app/plantify-backend/internal/models"
	"github.com/plantify-app/plantify-backend/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChallengeService manages community challenges.
type ChallengeService struct {
	repo *repository.ChallengeRepository
}

// NewChallengeService creates a new instance of ChallengeService.
func NewChallengeService(repo *repository.ChallengeRepository) *ChallengeService {
	return &ChallengeService{
		repo: repo,
	}
}

// GetChallenges lists all challenges.
func (s *ChallengeService) GetChallenges(ctx context.Context) ([]models.Challenge, error) {
	return s.repo.GetAllChallenges(ctx)
}

// CreateChallenge validates and stores a new challenge.
func (s *ChallengeService) CreateChallenge(ctx context.Context, challenge *models.Challenge) (*models.Challenge, error) {
	if challenge.Name == "" || challenge.Description == "" || challenge.Goal == "" {
		return nil, fmt.Errorf("name, description and goal are required")
	}
	if challenge.StartDate.IsZero() || challenge.EndDate.IsZero() {
		return nil, fmt.Errorf("startDate and endDate are required")
	}
	if challenge.EndDate.Before(challenge.StartDate) {
		return nil, fmt.Errorf("endDate must be after startDate")
	}

	return s.repo.CreateChallenge(ctx, challenge)
}

// UpdateChallenge merges changes into an existing challenge.
func (s *ChallengeService) UpdateChallenge(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.Challenge, error) {
	update := bson.M{}
	for key, value := range fields {
		switch key {
		case "name", "description", "goal", "start_date", "end_date":
			update[key] = value
		}
	}
	if len(update) == 0 {
		return nil, fmt.Errorf("nothing to update")
	}

	return s.repo.UpdateChallenge(ctx, id, update)
}

// DeleteChallenge removes a challenge.
func (s *ChallengeService) DeleteChallenge(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.DeleteChallenge(ctx, id)
}
