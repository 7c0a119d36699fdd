package services

import (
	"context"
	"fmt"

	"github.com/plantify-app/plantify-backend/internal/models"
	"github.com/plantify-app/plantify-backend/internal/repository"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlantService serves the planted-tree records and their map views.
type PlantService struct {
	repo     *repository.PlantRepository
	userRepo *repository.UserRepository
}

// NewPlantService creates a new instance of PlantService.
func NewPlantService(repo *repository.PlantRepository, userRepo *repository.UserRepository) *PlantService {
	return &PlantService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// GetPlants lists every plant, newest planting first, enriched with owners.
func (s *PlantService) GetPlants(ctx context.Context) ([]models.PlantView, error) {
	plants, err := s.repo.GetAllPlants(ctx)
	if err != nil {
		return nil, err
	}

	ownerIDs := make([]primitive.ObjectID, 0, len(plants))
	seen := make(map[primitive.ObjectID]bool)
	for _, plant := range plants {
		if !seen[plant.UserID] {
			seen[plant.UserID] = true
			ownerIDs = append(ownerIDs, plant.UserID)
		}
	}

	owners := make(map[primitive.ObjectID]models.User)
	if len(ownerIDs) > 0 {
		users, err := s.userRepo.GetUsersByIDs(ctx, ownerIDs)
		if err != nil {
			logrus.WithError(err).Warn("Failed to enrich plants with owners")
		}
		for _, user := range users {
			owners[user.ID] = user
		}
	}

	views := make([]models.PlantView, 0, len(plants))
	for _, plant := range plants {
		view := models.PlantView{
			ID:          plant.ID,
			Name:        plant.Name,
			Location:    plant.Location,
			Photo:       plant.Photo,
			DatePlanted: plant.DatePlanted,
		}
		if owner, ok := owners[plant.UserID]; ok {
			view.PlantedBy = owner.Username
			view.Avatar = owner.Avatar
		}
		views = append(views, view)
	}
	return views, nil
}

// GetPlant fetches a single plant with owner enrichment.
func (s *PlantService) GetPlant(ctx context.Context, id primitive.ObjectID) (*models.PlantView, error) {
	plant, err := s.repo.GetPlantByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &models.PlantView{
		ID:          plant.ID,
		Name:        plant.Name,
		Location:    plant.Location,
		Photo:       plant.Photo,
		DatePlanted: plant.DatePlanted,
	}
	if owner, err := s.userRepo.GetUserByID(ctx, plant.UserID); err == nil {
		view.PlantedBy = owner.Username
		view.Avatar = owner.Avatar
	}
	return view, nil
}

// CreatePlant stores a plant directly, bypassing session completion (admin path).
func (s *PlantService) CreatePlant(ctx context.Context, plant *models.Plant) (*models.Plant, error) {
	if plant.UserID.IsZero() {
		return nil, fmt.Errorf("userId is required")
	}
	if plant.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	return s.repo.CreatePlant(ctx, plant)
}

// UpdatePlant merges name/location/photo changes into an existing plant.
func (s *PlantService) UpdatePlant(ctx context.Context, id primitive.ObjectID, name string, location *models.GeoPoint, photo string) (*models.Plant, error) {
	update := bson.M{}
	if name != "" {
		update["name"] = name
	}
	if location != nil {
		update["location"] = *location
	}
	if photo != "" {
		update["photo"] = photo
	}
	if len(update) == 0 {
		return nil, fmt.Errorf("nothing to update")
	}

	return s.repo.UpdatePlant(ctx, id, update)
}

// DeletePlant removes a plant.
func (s *PlantService) DeletePlant(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.DeletePlant(ctx, id)
}
