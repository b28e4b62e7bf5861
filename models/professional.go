package models

import "time"

// Professional is a healthcare professional's account and public profile.
type Professional struct {
	ID              string             `bson:"id" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Email           string             `bson:"email" json:"email"`
	PhoneNumber     string             `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Specialty       string             `bson:"specialty" json:"specialty"`
	Qualifications  []string           `bson:"qualifications,omitempty" json:"qualifications,omitempty"`
	Bio             string             `bson:"bio,omitempty" json:"bio,omitempty"`
	ProfileImage    string             `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	ConsultationFee float64            `bson:"consultationFee,omitempty" json:"consultationFee,omitempty"`
	OrganizationIDs []string           `bson:"organizationIds,omitempty" json:"organizationIds,omitempty"`
	Availability    WeeklyAvailability `bson:"availability" json:"availability"`
	Verified        bool               `bson:"verified" json:"verified"`
	Security        Security           `bson:"security" json:"security,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
