package organization

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	affiliationRepo "carelink/database/repository/affiliation"
	"carelink/models"
	"carelink/utils"
)

// RequestAffiliation files a pending request from a professional to join an
// organization. The unique index on (professionalId, organizationId) closes
// the window for concurrent duplicate submissions.
func (s *DefaultOrganizationService) RequestAffiliation(ctx context.Context, professionalID, organizationID, message string) (*models.AffiliationRequest, error) {
	if _, err := s.GetByID(ctx, organizationID); err != nil {
		return nil, err
	}
	if _, err := s.ProfessionalRepo.GetByID(ctx, professionalID); err != nil {
		return nil, fmt.Errorf("professional not found: %w", err)
	}

	req := &models.AffiliationRequest{
		ProfessionalID: professionalID,
		OrganizationID: organizationID,
		Status:         models.AffiliationPending,
		Message:        message,
	}
	if err := s.AffiliationRepo.Create(ctx, req); err != nil {
		if affiliationRepo.IsDuplicateRequestErr(err) {
			return nil, ErrDuplicateRequest
		}
		return nil, fmt.Errorf("failed to create affiliation request: %w", err)
	}

	utils.GetLogger().Info("affiliation requested",
		zap.String("professionalId", professionalID), zap.String("organizationId", organizationID))
	return req, nil
}

// ReviewAffiliation lets the organization admin approve or reject a pending
// request. Approval also attaches the organization to the professional.
func (s *DefaultOrganizationService) ReviewAffiliation(ctx context.Context, requestID, adminUserID, decision, reviewNote string) (*models.AffiliationRequest, error) {
	if decision != models.AffiliationApproved && decision != models.AffiliationRejected {
		return nil, fmt.Errorf("decision must be %q or %q", models.AffiliationApproved, models.AffiliationRejected)
	}

	req, err := s.AffiliationRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, errors.New("affiliation request not found")
	}
	org, err := s.GetByID(ctx, req.OrganizationID)
	if err != nil {
		return nil, err
	}
	if org.AdminUserID != adminUserID {
		return nil, ErrForbidden
	}
	if req.Status != models.AffiliationPending {
		return nil, fmt.Errorf("request has already been %s", req.Status)
	}

	if err := s.AffiliationRepo.SetStatus(ctx, requestID, decision, reviewNote); err != nil {
		return nil, fmt.Errorf("failed to update affiliation request: %w", err)
	}
	if decision == models.AffiliationApproved {
		if err := s.ProfessionalRepo.AddOrganization(ctx, req.ProfessionalID, req.OrganizationID); err != nil {
			return nil, fmt.Errorf("failed to attach organization: %w", err)
		}
	}

	utils.GetLogger().Info("affiliation reviewed",
		zap.String("requestId", requestID), zap.String("decision", decision))
	req.Status = decision
	req.ReviewNote = reviewNote
	return req, nil
}

// PendingAffiliations lists an organization's open requests for its admin.
func (s *DefaultOrganizationService) PendingAffiliations(ctx context.Context, organizationID, adminUserID string) ([]models.AffiliationRequest, error) {
	org, err := s.GetByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	if org.AdminUserID != adminUserID {
		return nil, ErrForbidden
	}
	return s.AffiliationRepo.ListByOrganization(ctx, organizationID, models.AffiliationPending)
}

func (s *DefaultOrganizationService) AffiliationsForProfessional(ctx context.Context, professionalID string) ([]models.AffiliationRequest, error) {
	return s.AffiliationRepo.ListByProfessional(ctx, professionalID)
}
