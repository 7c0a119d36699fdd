package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeaderboardSortField(t *testing.T) {
	tests := []struct {
		sortBy string
		want   string
	}{
		{"treesPlanted", "trees_planted"},
		{"energySaved", "energy_saved"},
		{"streak", "streak"},
		{"sessionsCompleted", "sessions_completed"},
		{"pomodorosCompleted", "pomodoros_completed"},
		{"", "pomodoros_completed"},
		{"garbage", "pomodoros_completed"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, leaderboardSortField(tt.sortBy), "sortBy=%q", tt.sortBy)
	}
}

func TestTotalFocusHours(t *testing.T) {
	assert.Equal(t, int64(0), totalFocusHours(0))
	assert.Equal(t, int64(0), totalFocusHours(2))   // 50 minutes
	assert.Equal(t, int64(1), totalFocusHours(3))   // 75 minutes
	assert.Equal(t, int64(5), totalFocusHours(12))  // 300 minutes
	assert.Equal(t, int64(41), totalFocusHours(100))
}
