package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Partner is a cause organization eligible to receive recorded donations.
type Partner struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Logo        string             `bson:"logo" json:"logo"`
	Description string             `bson:"description" json:"description"`
	Link        string             `bson:"link" json:"link"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}
