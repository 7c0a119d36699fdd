package services

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/crypto/bcrypt"

	"github.com/plantify-app/plantify-backend/internal/models"
	"github.com/plantify-app/plantify-backend/internal/repository"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const leaderboardLimit = 10

// UserService encapsulates the business logic for user operations.
type UserService struct {
	repo *repository.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// RegisterRequest carries signup credentials.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// RegisterUser registers a new user after hashing their password.
func (s *UserService) RegisterUser(ctx context.Context, req RegisterRequest) (*models.User, error) {
	logrus.Info("Registering new user")

	if req.Username == "" || req.Password == "" {
		logrus.Warn("Missing required fields during registration")
		return nil, fmt.Errorf("username and password are required")
	}

	// Check if the username is already taken
	existing, _ := s.repo.GetUserByUsername(ctx, req.Username)
	if existing != nil {
		logrus.WithField("username", req.Username).Warn("Username already taken")
		return nil, fmt.Errorf("username already taken")
	}

	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("Password hashing failed")
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	role := req.Role
	if role != models.RoleAdmin {
		role = models.RoleUser
	}

	user := &models.User{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: string(hashedPwd),
		Role:           role,
	}

	createdUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		logrus.WithError(err).Error("User registration failed")
		return nil, fmt.Errorf("failed to register user: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"userID": createdUser.ID.Hex(),
		"role":   createdUser.Role,
	}).Info("User registered successfully")

	return createdUser, nil
}

// AuthenticateUser verifies the credentials and returns the user when valid.
func (s *UserService) AuthenticateUser(ctx context.Context, username, password string) (*models.User, error) {
	logrus.WithField("username", username).Info("Authenticating user")

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		logrus.WithField("username", username).Warn("User not found")
		return nil, fmt.Errorf("invalid credentials")
	}
	if user.IsDeleted {
		logrus.WithField("username", username).Warn("Login attempt on deleted account")
		return nil, fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		logrus.WithField("username", username).Warn("Invalid credentials")
		return nil, fmt.Errorf("invalid credentials")
	}

	logrus.WithField("userID", user.ID.Hex()).Info("User authenticated successfully")
	return user, nil
}

// GetUser retrieves a user by their ID.
func (s *UserService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.repo.GetUserByID(ctx, id)
}

// GetAllUsers lists accounts; soft-deleted ones only when includeDeleted is set.
func (s *UserService) GetAllUsers(ctx context.Context, includeDeleted bool) ([]models.User, error) {
	return s.repo.GetAllUsers(ctx, includeDeleted)
}

// UpdateProfile updates the profile fields a user may change themselves.
func (s *UserService) UpdateProfile(ctx context.Context, id primitive.ObjectID, name, avatar string) (*models.User, error) {
	update := bson.M{}
	if name != "" {
		update["username"] = name
	}
	if avatar != "" {
		update["avatar"] = avatar
	}
	if len(update) == 0 {
		return nil, fmt.Errorf("nothing to update")
	}

	return s.repo.UpdateUser(ctx, id, update)
}

// UpdateUser applies a partial update with caller-supplied fields.
func (s *UserService) UpdateUser(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.User, error) {
	update := bson.M{}
	for key, value := range fields {
		switch key {
		case "username", "email", "avatar":
			update[key] = value
		}
	}
	if len(update) == 0 {
		return nil, fmt.Errorf("nothing to update")
	}

	return s.repo.UpdateUser(ctx, id, update)
}

// UpdateUserRole changes a user's role. Admin surface only.
func (s *UserService) UpdateUserRole(ctx context.Context, id primitive.ObjectID, role string) (*models.User, error) {
	if role != models.RoleUser && role != models.RoleAdmin {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	return s.repo.UpdateUser(ctx, id, bson.M{"role": role})
}

// SoftDeleteUser marks an account as deleted, keeping the document.
func (s *UserService) SoftDeleteUser(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.SoftDeleteUser(ctx, id)
}

// HardDeleteUser removes an account permanently. Admin surface only.
func (s *UserService) HardDeleteUser(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.DeleteUser(ctx, id)
}

// GetLeaderboard returns the top users ranked by the requested counter.
func (s *UserService) GetLeaderboard(ctx context.Context, sortBy string) ([]models.User, error) {
	return s.repo.GetLeaderboard(ctx, leaderboardSortField(sortBy), leaderboardLimit)
}

// leaderboardSortField maps the public sortBy parameter onto a stored counter.
// Unknown fields fall back to pomodorosCompleted rather than erroring.
func leaderboardSortField(sortBy string) string {
	switch sortBy {
	case "treesPlanted":
		return "trees_planted"
	case "energySaved":
		return "energy_saved"
	case "streak":
		return "streak"
	case "sessionsCompleted":
		return "sessions_completed"
	default:
		return "pomodoros_completed"
	}
}

// GetUserStats builds the derived dashboard payload for one user.
func (s *UserService) GetUserStats(ctx context.Context, id primitive.ObjectID) (*models.UserStats, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.UserStats{
		Name:               user.Username,
		Avatar:             user.Avatar,
		TreesPlanted:       user.TreesPlanted,
		Streak:             user.Streak,
		PomodorosCompleted: user.PomodorosCompleted,
		TotalFocusHours:    totalFocusHours(user.PomodorosCompleted),
		EnergySavedKwh:     energyKwh(user.EnergySaved),
	}, nil
}

// totalFocusHours assumes the conventional 25-minute session length.
func totalFocusHours(pomodoros int64) int64 {
	return int64(math.Floor(float64(pomodoros*models.DefaultFocusTime) / 60))
}
