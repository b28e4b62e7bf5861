package user

import (
	"context"

	userRepo "carelink/database/repository/user"
	"carelink/models"
)

// RegistrationData is the payload accepted when creating a patient account.
type RegistrationData struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	PhoneNumber string `json:"phoneNumber"`
}

type UserService interface {
	Register(ctx context.Context, data RegistrationData) (*models.AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error)
	RevokeToken(ctx context.Context, userID string) error

	GetByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.User, error)
	UpdatePassword(ctx context.Context, id, currentPassword, newPassword string) error
	Delete(ctx context.Context, id string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
