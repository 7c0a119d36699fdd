package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeoPoint is a plain lat/lng pair for map display. Never queried spatially.
type GeoPoint struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Plant is a virtual tree planted as a reward for a completed focus session.
type Plant struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"user_id" json:"userId"`
	Name        string             `bson:"name" json:"name"`
	Location    GeoPoint           `bson:"location" json:"location"`
	Photo       string             `bson:"photo,omitempty" json:"photo,omitempty"`
	DatePlanted time.Time          `bson:"date_planted" json:"datePlanted"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// PlantView is a plant enriched with its owner's display data.
type PlantView struct {
	ID          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Location    GeoPoint           `json:"location"`
	Photo       string             `json:"photo,omitempty"`
	DatePlanted time.Time          `json:"datePlanted"`
	PlantedBy   string             `json:"plantedBy"`
	Avatar      string             `json:"avatar,omitempty"`
}
