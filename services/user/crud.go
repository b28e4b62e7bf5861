package user

import (
	"context"
	"fmt"

	"carelink/models"
)

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	user.Security = models.Security{}
	return user, nil
}

// Update merges allowed profile updates and returns the updated record.
func (s *DefaultUserService) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.User, error) {
	if err := s.Repo.Update(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.GetByID(ctx, id)
}

func (s *DefaultUserService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
