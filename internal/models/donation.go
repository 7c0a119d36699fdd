package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation records a pledge towards a cause. Recorded, never charged.
type Donation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	Amount    float64            `bson:"amount" json:"amount"`
	Cause     string             `bson:"cause" json:"cause"`
	Date      time.Time          `bson:"date" json:"date"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
