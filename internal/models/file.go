package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// File records an asset stored in the external object storage.
type File struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PublicID     string             `bson:"public_id" json:"publicId"`
	URL          string             `bson:"url" json:"url"`
	OriginalName string             `bson:"original_name" json:"originalName"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
}
