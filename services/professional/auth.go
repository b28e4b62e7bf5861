package professional

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"carelink/models"
	"carelink/utils"
)

// ErrInvalidCredentials covers unknown emails and wrong passwords alike, so
// the response does not reveal which one was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

const tokenTTL = 72 * time.Hour

// Register creates a professional account and signs the caller in.
func (s *DefaultProfessionalService) Register(ctx context.Context, data RegistrationData) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(data.Email))
	if existing, _ := s.Repo.GetByEmail(ctx, email); existing != nil {
		return nil, fmt.Errorf("an account with email %s already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	prof := &models.Professional{
		Name:            data.Name,
		Email:           email,
		PhoneNumber:     data.PhoneNumber,
		Specialty:       data.Specialty,
		Qualifications:  data.Qualifications,
		Bio:             data.Bio,
		ConsultationFee: data.ConsultationFee,
		Security:        models.Security{PasswordHash: string(hash)},
	}
	if err := s.Repo.Create(ctx, prof); err != nil {
		return nil, fmt.Errorf("failed to create professional: %w", err)
	}

	return s.issueToken(ctx, prof)
}

// Authenticate verifies credentials and issues a fresh token.
func (s *DefaultProfessionalService) Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	prof, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(prof.Security.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(ctx, prof)
}

func (s *DefaultProfessionalService) issueToken(ctx context.Context, prof *models.Professional) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(prof.ID, prof.Email, "professional", tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.Repo.SetTokenHash(ctx, prof.ID, utils.HashToken(token)); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}

	utils.GetLogger().Info("professional authenticated", zap.String("professionalId", prof.ID))
	return &models.AuthResponse{
		ID:    prof.ID,
		Name:  prof.Name,
		Email: prof.Email,
		Role:  "professional",
		Token: token,
	}, nil
}

// RevokeToken clears the stored token hash, invalidating the current token.
func (s *DefaultProfessionalService) RevokeToken(ctx context.Context, profID string) error {
	return s.Repo.SetTokenHash(ctx, profID, "")
}

// UpdatePassword rotates the password after verifying the current one, and
// revokes any outstanding token.
func (s *DefaultProfessionalService) UpdatePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	prof, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("professional not found: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(prof.Security.PasswordHash), []byte(currentPassword)) != nil {
		return ErrInvalidCredentials
	}
	if len(newPassword) < 8 {
		return errors.New("new password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.Repo.SetPasswordHash(ctx, id, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return s.RevokeToken(ctx, id)
}
