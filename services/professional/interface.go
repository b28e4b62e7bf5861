package professional

import (
	"context"

	professionalRepo "carelink/database/repository/professional"
	"carelink/models"
)

// RegistrationData is the payload accepted when creating a professional account.
type RegistrationData struct {
	Name            string   `json:"name" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	Password        string   `json:"password" binding:"required,min=8"`
	PhoneNumber     string   `json:"phoneNumber"`
	Specialty       string   `json:"specialty" binding:"required"`
	Qualifications  []string `json:"qualifications"`
	Bio             string   `json:"bio"`
	ConsultationFee float64  `json:"consultationFee"`
}

type ProfessionalService interface {
	Register(ctx context.Context, data RegistrationData) (*models.AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error)
	RevokeToken(ctx context.Context, profID string) error

	GetByID(ctx context.Context, id string) (*models.Professional, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Professional, error)
	UpdatePassword(ctx context.Context, id, currentPassword, newPassword string) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query, specialty string) ([]models.Professional, error)

	GetAvailability(ctx context.Context, id string) (*models.WeeklyAvailability, error)
	UpdateAvailability(ctx context.Context, id string, wa models.WeeklyAvailability) (*models.WeeklyAvailability, error)
}

// DefaultProfessionalService is the production implementation.
type DefaultProfessionalService struct {
	Repo professionalRepo.ProfessionalRepository
}
