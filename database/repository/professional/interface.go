package professionalRepo

import (
	"context"

	"carelink/database"
	"carelink/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ProfessionalRepository interface {
	Create(ctx context.Context, prof *models.Professional) error
	GetByID(ctx context.Context, id string) (*models.Professional, error)
	GetByEmail(ctx context.Context, email string) (*models.Professional, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Professional, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	UpdateAvailability(ctx context.Context, id string, wa models.WeeklyAvailability) error
	SetTokenHash(ctx context.Context, id, tokenHash string) error
	SetPasswordHash(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query, specialty string, limit int64) ([]models.Professional, error)
	AddOrganization(ctx context.Context, id, organizationID string) error
	EnsureIndexes() error
}

type mongoProfessionalRepo struct {
	coll *mongo.Collection
}

// NewMongoProfessionalRepo constructs a new MongoDB ProfessionalRepository.
func NewMongoProfessionalRepo() ProfessionalRepository {
	return &mongoProfessionalRepo{
		coll: database.DB().Collection("professionals"),
	}
}
