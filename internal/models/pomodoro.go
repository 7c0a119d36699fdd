package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PomodoroStatusIdle      = "idle"
	PomodoroStatusRunning   = "running"
	PomodoroStatusPaused    = "paused"
	PomodoroStatusCompleted = "completed"
)

const (
	DefaultFocusTime  = 25
	DefaultShortBreak = 5
	DefaultLongBreak  = 15
	DefaultRounds     = 4
)

// Pomodoro is a client-driven focus timer. Durations are in minutes.
type Pomodoro struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TaskName     string             `bson:"task_name" json:"taskName"`
	FocusTime    int                `bson:"focus_time" json:"focusTime"`
	ShortBreak   int                `bson:"short_break" json:"shortBreak"`
	LongBreak    int                `bson:"long_break" json:"longBreak"`
	Rounds       int                `bson:"rounds" json:"rounds"`
	CurrentRound int                `bson:"current_round" json:"currentRound"`
	Status       string             `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}
