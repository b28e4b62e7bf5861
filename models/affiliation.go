package models

import "time"

// Affiliation request statuses.
const (
	AffiliationPending  = "pending"
	AffiliationApproved = "approved"
	AffiliationRejected = "rejected"
)

// AffiliationRequest links a professional to an organization, subject to
// review by the organization's admin.
type AffiliationRequest struct {
	ID             string    `bson:"id" json:"id"`
	ProfessionalID string    `bson:"professionalId" json:"professionalId"`
	OrganizationID string    `bson:"organizationId" json:"organizationId"`
	Status         string    `bson:"status" json:"status"`
	Message        string    `bson:"message,omitempty" json:"message,omitempty"`
	ReviewNote     string    `bson:"reviewNote,omitempty" json:"reviewNote,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}
