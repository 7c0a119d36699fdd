package services

import (
	"context"
	"fmt"

	"github.com/plantify-app/plantify-backend/internal/models"
	"github.com/plantify-app/plantify-backend/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PartnerService manages the cause organizations shown on the donations page.
type PartnerService struct {
	repo *repository.PartnerRepository
}

// NewPartnerService creates a new instance of PartnerService.
func NewPartnerService(repo *repository.PartnerRepository) *PartnerService {
	return &PartnerService{
		repo: repo,
	}
}

// GetPartners lists all partners.
func (s *PartnerService) GetPartners(ctx context.Context) ([]models.Partner, error) {
	return s.repo.GetAllPartners(ctx)
}

// GetPartner fetches a partner by ID.
func (s *PartnerService) GetPartner(ctx context.Context, id primitive.ObjectID) (*models.Partner, error) {
	return s.repo.GetPartnerByID(ctx, id)
}

// CreatePartner validates and stores a new partner.
func (s *PartnerService) CreatePartner(ctx context.Context, partner *models.Partner) (*models.Partner, error) {
	if partner.Name == "" || partner.Logo == "" || partner.Description == "" || partner.Link == "" {
		return nil, fmt.Errorf("name, logo, description and link are required")
	}
	return s.repo.CreatePartner(ctx, partner)
}

// UpdatePartner merges changes into an existing partner.
func (s *PartnerService) UpdatePartner(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.Partner, error) {
	update := bson.M{}
	for key, value := range fields {
		switch key {
		case "name", "logo", "description", "link":
			update[key] = value
		}
	}
	if len(update) == 0 {
		return nil, fmt.Errorf("nothing to update")
	}

	return s.repo.UpdatePartner(ctx, id, update)
}

// DeletePartner removes a partner.
func (s *PartnerService) DeletePartner(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.DeletePartner(ctx, id)
}
