package services

import (
	"testing"

	"github.com/plantify-app/plantify-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAdvanceRound(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		rounds     int
		wantRound  int
		wantStatus string
	}{
		{
			name:       "first round goes back to idle",
			current:    0,
			rounds:     4,
			wantRound:  1,
			wantStatus: models.PomodoroStatusIdle,
		},
		{
			name:       "middle round goes back to idle",
			current:    2,
			rounds:     4,
			wantRound:  3,
			wantStatus: models.PomodoroStatusIdle,
		},
		{
			name:       "last round completes the timer",
			current:    3,
			rounds:     4,
			wantRound:  4,
			wantStatus: models.PomodoroStatusCompleted,
		},
		{
			name:       "single round timer completes immediately",
			current:    0,
			rounds:     1,
			wantRound:  1,
			wantStatus: models.PomodoroStatusCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &models.Pomodoro{
				CurrentRound: tt.current,
				Rounds:       tt.rounds,
				Status:       models.PomodoroStatusRunning,
			}
			advanceRound(p)
			assert.Equal(t, tt.wantRound, p.CurrentRound)
			assert.Equal(t, tt.wantStatus, p.Status)
		})
	}
}
