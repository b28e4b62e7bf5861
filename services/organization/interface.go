package organization

import (
	"context"

	affiliationRepo "carelink/database/repository/affiliation"
	organizationRepo "carelink/database/repository/organization"
	professionalRepo "carelink/database/repository/professional"
	"carelink/models"
)

// CreateData is the payload accepted when registering an organization.
type CreateData struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	Website     string `json:"website"`
	Description string `json:"description"`
}

type OrganizationService interface {
	Create(ctx context.Context, adminUserID string, data CreateData) (*models.Organization, error)
	GetByID(ctx context.Context, id string) (*models.Organization, error)
	Update(ctx context.Context, id, adminUserID string, updates map[string]interface{}) (*models.Organization, error)
	List(ctx context.Context, limit int64) ([]models.Organization, error)

	RequestAffiliation(ctx context.Context, professionalID, organizationID, message string) (*models.AffiliationRequest, error)
	ReviewAffiliation(ctx context.Context, requestID, adminUserID, decision, reviewNote string) (*models.AffiliationRequest, error)
	PendingAffiliations(ctx context.Context, organizationID, adminUserID string) ([]models.AffiliationRequest, error)
	AffiliationsForProfessional(ctx context.Context, professionalID string) ([]models.AffiliationRequest, error)
}

// DefaultOrganizationService is the production implementation.
type DefaultOrganizationService struct {
	Repo             organizationRepo.OrganizationRepository
	AffiliationRepo  affiliationRepo.AffiliationRepository
	ProfessionalRepo professionalRepo.ProfessionalRepository
}
