package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// MinutesToKWh converts focus minutes into kilowatt-hours saved
// (one watt avoided per focus minute).
const MinutesToKWh = 1.0 / 60000

// User represents an account together with its cumulative reward counters.
type User struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username           string             `bson:"username" json:"username"`
	Email              string             `bson:"email,omitempty" json:"email,omitempty"`
	HashedPassword     string             `bson:"hashed_password" json:"-"`
	Avatar             string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Role               string             `bson:"role" json:"role"`
	PomodorosCompleted int64              `bson:"pomodoros_completed" json:"pomodorosCompleted"`
	SessionsCompleted  int64              `bson:"sessions_completed" json:"sessionsCompleted"`
	TreesPlanted       int64              `bson:"trees_planted" json:"treesPlanted"`
	EnergySaved        int64              `bson:"energy_saved" json:"energySaved"` // minutes
	Streak             int64              `bson:"streak" json:"streak"`
	LastPomodoroDate   *time.Time         `bson:"last_pomodoro_date,omitempty" json:"lastPomodoroDate,omitempty"`
	IsDeleted          bool               `bson:"is_deleted" json:"isDeleted"`
	CreatedAt          time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updated_at" json:"updatedAt"`
}

// UserStats is the derived dashboard payload for a single user.
type UserStats struct {
	Name               string `json:"name"`
	Avatar             string `json:"avatar,omitempty"`
	TreesPlanted       int64  `json:"treesPlanted"`
	Streak             int64  `json:"streak"`
	PomodorosCompleted int64  `json:"pomodorosCompleted"`
	TotalFocusHours    int64  `json:"totalFocusHours"`
	EnergySavedKwh     string `json:"energySavedKwh"`
}
