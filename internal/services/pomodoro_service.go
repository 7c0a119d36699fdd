package services

import (
	"context"
	"fmt"

	"github.com/plantify-app/plantify-backend/internal/models"
	"github.com/plantify-app/plantify-backend/internal/repository"
	"github.com/plantify-app/plantify-backend/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PomodoroService drives the client-controlled focus timer documents.
// Transitions are direct status writes; there is deliberately no transition
// table, matching the client contract.
type PomodoroService struct {
	repo *repository.PomodoroRepository
}

// NewPomodoroService creates a new instance of PomodoroService.
func NewPomodoroService(repo *repository.PomodoroRepository) *PomodoroService {
	return &PomodoroService{
		repo: repo,
	}
}

// CreatePomodoro validates and stores a new timer with defaults applied.
func (s *PomodoroService) CreatePomodoro(ctx context.Context, pomodoro *models.Pomodoro) (*models.Pomodoro, error) {
	if pomodoro.TaskName == "" {
		return nil, fmt.Errorf("task name is required")
	}

	if pomodoro.FocusTime <= 0 {
		pomodoro.FocusTime = models.DefaultFocusTime
	}
	if pomodoro.ShortBreak <= 0 {
		pomodoro.ShortBreak = models.DefaultShortBreak
	}
	if pomodoro.LongBreak <= 0 {
		pomodoro.LongBreak = models.DefaultLongBreak
	}
	if pomodoro.Rounds <= 0 {
		pomodoro.Rounds = models.DefaultRounds
	}
	pomodoro.CurrentRound = 0
	pomodoro.Status = models.PomodoroStatusIdle

	return s.repo.CreatePomodoro(ctx, pomodoro)
}

// GetAllPomodoros lists every timer, newest first.
func (s *PomodoroService) GetAllPomodoros(ctx context.Context) ([]models.Pomodoro, error) {
	return s.repo.GetAllPomodoros(ctx)
}

// SetStatus overwrites a timer's status regardless of its current state.
func (s *PomodoroService) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Pomodoro, error) {
	updated, err := s.repo.UpdatePomodoro(ctx, id, bson.M{"status": status})
	if err != nil {
		return nil, err
	}

	logger.Log.WithFields(map[string]interface{}{
		"pomodoro_id": id.Hex(),
		"status":      status,
	}).Info("Pomodoro status updated")
	return updated, nil
}

// CompleteRound advances the round counter; the timer finishes once every
// round is done, otherwise it returns to idle for the next round.
func (s *PomodoroService) CompleteRound(ctx context.Context, id primitive.ObjectID) (*models.Pomodoro, error) {
	pomodoro, err := s.repo.GetPomodoroByID(ctx, id)
	if err != nil {
		return nil, err
	}

	advanceRound(pomodoro)

	return s.repo.UpdatePomodoro(ctx, id, bson.M{
		"current_round": pomodoro.CurrentRound,
		"status":        pomodoro.Status,
	})
}

// DeletePomodoro removes a timer.
func (s *PomodoroService) DeletePomodoro(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.DeletePomodoro(ctx, id)
}

// advanceRound increments the round counter and derives the resulting status.
func advanceRound(p *models.Pomodoro) {
	p.CurrentRound++
	if p.CurrentRound >= p.Rounds {
		p.Status = models.PomodoroStatusCompleted
	} else {
		p.Status = models.PomodoroStatusIdle
	}
}
