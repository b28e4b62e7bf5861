package organization

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"carelink/models"
	"carelink/utils"
)

var (
	ErrNotFound         = errors.New("organization not found")
	ErrForbidden        = errors.New("only the organization admin may do that")
	ErrDuplicateRequest = errors.New("a pending request for this organization already exists")
)

// Create registers a new organization administered by the calling user.
func (s *DefaultOrganizationService) Create(ctx context.Context, adminUserID string, data CreateData) (*models.Organization, error) {
	org := &models.Organization{
		Name:        data.Name,
		Type:        data.Type,
		Address:     data.Address,
		PhoneNumber: data.PhoneNumber,
		Website:     data.Website,
		Description: data.Description,
		AdminUserID: adminUserID,
	}
	if err := s.Repo.Create(ctx, org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}
	utils.GetLogger().Info("organization created",
		zap.String("organizationId", org.ID), zap.String("adminUserId", adminUserID))
	return org, nil
}

func (s *DefaultOrganizationService) GetByID(ctx context.Context, id string) (*models.Organization, error) {
	org, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return org, nil
}

// Update applies allowed field changes after checking the caller is the admin.
func (s *DefaultOrganizationService) Update(ctx context.Context, id, adminUserID string, updates map[string]interface{}) (*models.Organization, error) {
	org, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org.AdminUserID != adminUserID {
		return nil, ErrForbidden
	}
	if err := s.Repo.Update(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}
	return s.GetByID(ctx, id)
}

func (s *DefaultOrganizationService) List(ctx context.Context, limit int64) ([]models.Organization, error) {
	return s.Repo.List(ctx, limit)
}
