package professional

import (
	"context"
	"fmt"

	"carelink/models"
)

const searchLimit = 25

func (s *DefaultProfessionalService) GetByID(ctx context.Context, id string) (*models.Professional, error) {
	prof, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("professional not found: %w", err)
	}
	prof.Security = models.Security{}
	return prof, nil
}

// Update merges allowed profile updates and returns the updated record.
func (s *DefaultProfessionalService) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Professional, error) {
	if err := s.Repo.Update(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("failed to update professional: %w", err)
	}
	return s.GetByID(ctx, id)
}

func (s *DefaultProfessionalService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// Search matches professionals by name or specialty, case-insensitively.
func (s *DefaultProfessionalService) Search(ctx context.Context, query, specialty string) ([]models.Professional, error) {
	return s.Repo.Search(ctx, query, specialty, searchLimit)
}
