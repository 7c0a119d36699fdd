package services

import (
	"context"
	"fmt"
	"time"

	"github.com/plantify-app/plantify-backend/internal/models"
	"github.com/plantify-app/plantify-backend/internal/repository"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultPlantLocation is used when a completed session carries no coordinates.
var DefaultPlantLocation = models.GeoPoint{Lat: 40.7128, Lng: -74.0060}

// SessionService turns completed focus sessions into counter updates and plant rewards.
type SessionService struct {
	userRepo  *repository.UserRepository
	plantRepo *repository.PlantRepository
}

// NewSessionService creates a new instance of SessionService.
func NewSessionService(userRepo *repository.UserRepository, plantRepo *repository.PlantRepository) *SessionService {
	return &SessionService{
		userRepo:  userRepo,
		plantRepo: plantRepo,
	}
}

// CompleteSessionRequest is the payload of POST /api/sessions/complete.
type CompleteSessionRequest struct {
	UserID    string           `json:"userId"`
	Duration  int64            `json:"duration"`
	PlantName string           `json:"plantName,omitempty"`
	Location  *models.GeoPoint `json:"location,omitempty"`
	Photo     string           `json:"photo,omitempty"`
}

// SessionSummary is the counter snapshot returned after a completion.
type SessionSummary struct {
	TreesPlanted       int64  `json:"treesPlanted"`
	Streak             int64  `json:"streak"`
	PomodorosCompleted int64  `json:"pomodorosCompleted"`
	EnergySavedKwh     string `json:"energySavedKwh"`
}

// CompleteSessionResponse bundles the updated counters with the freshly planted tree.
type CompleteSessionResponse struct {
	Message string           `json:"message"`
	User    SessionSummary   `json:"user"`
	Plant   models.PlantView `json:"plant"`
}

// CompleteSession applies the reward accrual for one finished focus session:
// counters and streak on the user, plus a new plant record linked to them.
// The two writes are independent; there is no cross-document atomicity.
func (s *SessionService) CompleteSession(ctx context.Context, userID primitive.ObjectID, req CompleteSessionRequest) (*CompleteSessionResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsDeleted {
		return nil, repository.ErrNotFound
	}

	duration := req.Duration
	if duration <= 0 {
		duration = models.DefaultFocusTime
	}

	applyCompletion(user, duration, time.Now())

	if _, err := s.userRepo.UpdateUser(ctx, userID, bson.M{
		"pomodoros_completed": user.PomodorosCompleted,
		"sessions_completed":  user.SessionsCompleted,
		"trees_planted":       user.TreesPlanted,
		"energy_saved":        user.EnergySaved,
		"streak":              user.Streak,
		"last_pomodoro_date":  user.LastPomodoroDate,
	}); err != nil {
		logrus.WithError(err).Error("Failed to persist session counters")
		return nil, fmt.Errorf("failed to update user stats: %v", err)
	}

	plant := &models.Plant{
		UserID:      userID,
		Name:        req.PlantName,
		Photo:       req.Photo,
		DatePlanted: time.Now(),
	}
	if plant.Name == "" {
		plant.Name = fmt.Sprintf("Tree #%d", user.TreesPlanted)
	}
	if req.Location != nil {
		plant.Location = *req.Location
	} else {
		plant.Location = DefaultPlantLocation
	}

	created, err := s.plantRepo.CreatePlant(ctx, plant)
	if err != nil {
		logrus.WithError(err).Error("Failed to create reward plant")
		return nil, fmt.Errorf("failed to create plant: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"userID":  userID.Hex(),
		"plantID": created.ID.Hex(),
		"streak":  user.Streak,
	}).Info("Session completed")

	return &CompleteSessionResponse{
		Message: "Session completed!",
		User: SessionSummary{
			TreesPlanted:       user.TreesPlanted,
			Streak:             user.Streak,
			PomodorosCompleted: user.PomodorosCompleted,
			EnergySavedKwh:     energyKwh(user.EnergySaved),
		},
		Plant: models.PlantView{
			ID:          created.ID,
			Name:        created.Name,
			Location:    created.Location,
			Photo:       created.Photo,
			DatePlanted: created.DatePlanted,
			PlantedBy:   user.Username,
			Avatar:      user.Avatar,
		},
	}, nil
}

// applyCompletion mutates the user's counters and streak for one finished session.
func applyCompletion(user *models.User, duration int64, now time.Time) {
	user.PomodorosCompleted++
	user.SessionsCompleted++
	user.TreesPlanted++
	user.EnergySaved += duration
	user.Streak = nextStreak(user.Streak, user.LastPomodoroDate, now)

	completedAt := now
	user.LastPomodoroDate = &completedAt
}

// nextStreak counts consecutive calendar days with at least one completion.
// Comparison is midnight-aligned: a second completion on the same day leaves
// the streak untouched, a one-day gap extends it, anything longer resets to 1.
func nextStreak(prev int64, last *time.Time, now time.Time) int64 {
	if last == nil {
		return 1
	}

	today := midnight(now)
	lastDay := midnight(*last)

	switch {
	case lastDay.AddDate(0, 0, 1).Equal(today):
		return prev + 1
	case today.After(lastDay.AddDate(0, 0, 1)):
		return 1
	default:
		return prev
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// energyKwh renders saved focus minutes as kilowatt-hours with two decimals.
func energyKwh(minutes int64) string {
	return fmt.Sprintf("%.2f", float64(minutes)*models.MinutesToKWh)
}
