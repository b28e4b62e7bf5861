package models

import "time"

// Organization is a clinic or hospital hosting affiliated professionals.
type Organization struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Type        string    `bson:"type,omitempty" json:"type,omitempty"` // e.g. "clinic", "hospital"
	Address     string    `bson:"address,omitempty" json:"address,omitempty"`
	PhoneNumber string    `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Website     string    `bson:"website,omitempty" json:"website,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	LogoImage   string    `bson:"logoImage,omitempty" json:"logoImage,omitempty"`
	AdminUserID string    `bson:"adminUserId" json:"adminUserId"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
