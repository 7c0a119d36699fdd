package services

import (
	"testing"
	"time"

	"github.com/plantify-app/plantify-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
}

func TestNextStreak(t *testing.T) {
	yesterday := day(2026, time.March, 9, 22)
	today := day(2026, time.March, 10, 8)

	tests := []struct {
		name string
		prev int64
		last *time.Time
		now  time.Time
		want int64
	}{
		{
			name: "first ever completion starts at one",
			prev: 0,
			last: nil,
			now:  today,
			want: 1,
		},
		{
			name: "consecutive day extends the streak",
			prev: 4,
			last: &yesterday,
			now:  today,
			want: 5,
		},
		{
			name: "same day keeps the streak untouched",
			prev: 4,
			last: &today,
			now:  day(2026, time.March, 10, 23),
			want: 4,
		},
		{
			name: "two day gap resets to one",
			prev: 9,
			last: &yesterday,
			now:  day(2026, time.March, 12, 8),
			want: 1,
		},
		{
			name: "late night to early morning still counts as consecutive",
			prev: 2,
			last: &yesterday,
			now:  day(2026, time.March, 10, 0),
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextStreak(tt.prev, tt.last, tt.now))
		})
	}
}

func TestApplyCompletion(t *testing.T) {
	yesterday := day(2026, time.March, 9, 20)
	now := day(2026, time.March, 10, 9)

	user := &models.User{
		PomodorosCompleted: 7,
		SessionsCompleted:  7,
		TreesPlanted:       7,
		EnergySaved:        175,
		Streak:             3,
		LastPomodoroDate:   &yesterday,
	}

	applyCompletion(user, 25, now)

	assert.Equal(t, int64(8), user.PomodorosCompleted)
	assert.Equal(t, int64(8), user.SessionsCompleted)
	assert.Equal(t, int64(8), user.TreesPlanted)
	assert.Equal(t, int64(200), user.EnergySaved)
	assert.Equal(t, int64(4), user.Streak)
	if assert.NotNil(t, user.LastPomodoroDate) {
		assert.Equal(t, now, *user.LastPomodoroDate)
	}
}

func TestApplyCompletionSameDayTwice(t *testing.T) {
	now := day(2026, time.March, 10, 9)

	user := &models.User{Streak: 0}
	applyCompletion(user, 25, now)
	assert.Equal(t, int64(1), user.Streak)

	applyCompletion(user, 25, now.Add(2*time.Hour))
	assert.Equal(t, int64(1), user.Streak)
	assert.Equal(t, int64(2), user.PomodorosCompleted)
	assert.Equal(t, int64(2), user.TreesPlanted)
}

func TestEnergyKwh(t *testing.T) {
	assert.Equal(t, "0.00", energyKwh(0))
	assert.Equal(t, "0.00", energyKwh(25))
	assert.Equal(t, "0.01", energyKwh(600))
	assert.Equal(t, "1.00", energyKwh(60000))
	assert.Equal(t, "2.50", energyKwh(150000))
}
