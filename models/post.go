package models

import "time"

// Post is one feed entry authored by a user or professional.
type Post struct {
	ID             string    `bson:"id" json:"id"`
	AuthorID       string    `bson:"authorId" json:"authorId"`
	AuthorRole     string    `bson:"authorRole" json:"authorRole"` // "patient" or "professional"
	Body           string    `bson:"body" json:"body"`
	MediaURL       string    `bson:"mediaUrl,omitempty" json:"mediaUrl,omitempty"`
	LikedBy        []string  `bson:"likedBy,omitempty" json:"-"`
	LikeCount      int       `bson:"likeCount" json:"likeCount"`
	OrganizationID string    `bson:"organizationId,omitempty" json:"organizationId,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}
