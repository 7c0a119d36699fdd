package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/plantify-app/plantify-backend/internal/repository"
	"github.com/sirupsen/logrus"
)

// StreakResetter clears streaks for users who skipped a full calendar day.
type StreakResetter struct {
	UserRepo *repository.UserRepository
}

// NewStreakResetter creates a new instance of StreakResetter
func NewStreakResetter(userRepo *repository.UserRepository) *StreakResetter {
	return &StreakResetter{
		UserRepo: userRepo,
	}
}

// RunDailyScan zeroes the streak of every user whose last completed
// pomodoro predates yesterday. Runs right after midnight, so a streak
// survives only if the user completed a session the previous day.
func (s *StreakResetter) RunDailyScan(ctx context.Context) error {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	cutoff := today.AddDate(0, 0, -1)

	touched, err := s.UserRepo.ResetStaleStreaks(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("streak reset scan failed: %v", err)
	}

	logrus.WithField("users", touched).Info("Streak reset scan completed")
	return nil
}
