package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is user-authored feed content with embedded likes and comments.
type Post struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID   `bson:"user_id" json:"userId"`
	Content   string               `bson:"content" json:"content"`
	Image     string               `bson:"image,omitempty" json:"image,omitempty"`
	Likes     []primitive.ObjectID `bson:"likes,omitempty" json:"likes"`
	Comments  []Comment            `bson:"comments,omitempty" json:"comments"`
	CreatedAt time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updated_at" json:"updatedAt"`
}

// Comment is an append-only entry embedded in a post.
type Comment struct {
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// PostView is a post enriched with its author's display data.
type PostView struct {
	Post
	AuthorName   string `json:"authorName,omitempty"`
	AuthorAvatar string `json:"authorAvatar,omitempty"`
}
