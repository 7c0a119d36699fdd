package services

import (
	"context"
	"fmt"

	"github.com/plantify-app/plantify-backend/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
)

// AdminService aggregates cross-collection totals for the dashboard.
type AdminService struct {
	userRepo     *repository.UserRepository
	plantRepo    *repository.PlantRepository
	donationRepo *repository.DonationRepository
}

// NewAdminService creates a new instance of AdminService.
func NewAdminService(userRepo *repository.UserRepository, plantRepo *repository.PlantRepository, donationRepo *repository.DonationRepository) *AdminService {
	return &AdminService{
		userRepo:     userRepo,
		plantRepo:    plantRepo,
		donationRepo: donationRepo,
	}
}

// AdminStats is the dashboard headline payload.
type AdminStats struct {
	TotalUsers     int64   `json:"totalUsers"`
	TotalTrees     int64   `json:"totalTrees"`
	TotalPomodoros int64   `json:"totalPomodoros"`
	TotalDonations float64 `json:"totalDonations"`
}

// Analytics is the secondary aggregate payload.
type Analytics struct {
	ActiveUsers      int64 `json:"activeUsers"`
	TotalEnergySaved int64 `json:"totalEnergySaved"`
	PlantGrowth      int64 `json:"plantGrowth"`
}

// GetStats computes the dashboard headline numbers.
func (s *AdminService) GetStats(ctx context.Context) (*AdminStats, error) {
	totalUsers, err := s.userRepo.CountUsers(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %v", err)
	}

	totalTrees, err := s.plantRepo.CountPlants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count plants: %v", err)
	}

	totalPomodoros, err := s.userRepo.SumField(ctx, "pomodoros_completed")
	if err != nil {
		return nil, err
	}

	totalDonations, err := s.donationRepo.TotalAmount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to total donations: %v", err)
	}

	return &AdminStats{
		TotalUsers:     totalUsers,
		TotalTrees:     totalTrees,
		TotalPomodoros: totalPomodoros,
		TotalDonations: totalDonations,
	}, nil
}

// GetAnalytics computes simple engagement aggregates.
func (s *AdminService) GetAnalytics(ctx context.Context) (*Analytics, error) {
	activeUsers, err := s.userRepo.CountUsers(ctx, bson.M{"pomodoros_completed": bson.M{"$gt": 0}})
	if err != nil {
		return nil, fmt.Errorf("failed to count active users: %v", err)
	}

	totalEnergySaved, err := s.userRepo.SumField(ctx, "energy_saved")
	if err != nil {
		return nil, err
	}

	plantGrowth, err := s.plantRepo.CountPlants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count plants: %v", err)
	}

	return &Analytics{
		ActiveUsers:      activeUsers,
		TotalEnergySaved: totalEnergySaved,
		PlantGrowth:      plantGrowth,
	}, nil
}
