package user

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

// Register creates a patient account and signs the caller in.
func (s *DefaultUserService) Register(ctx context.Context, data RegistrationData) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(data.Email))
	if existing, _ := s.Repo.GetByEmail(ctx, email); existing != nil {
		return nil, fmt.Errorf("an account with email %s already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:        data.Name,
		Email:       email,
		PhoneNumber: data.PhoneNumber,
		Security:    models.Security{PasswordHash: string(hash)},
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(ctx, user)
}

// Authenticate verifies credentials and issues a fresh token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	user, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Security.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(ctx, user)
}

func (s *DefaultUserService) issueToken(ctx context.Context, user *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(user.ID, user.Email, "patient", tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.Repo.SetTokenHash(ctx, user.ID, utils.HashToken(token)); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}

	utils.GetLogger().Info("user authenticated", zap.String("userId", user.ID))
	return &models.AuthResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  "patient",
		Token: token,
	}, nil
}

// RevokeToken clears the stored token hash, invalidating the current token.
func (s *DefaultUserService) RevokeToken(ctx context.Context, userID string) error {
	return s.Repo.SetTokenHash(ctx, userID, "")
}

// UpdatePassword rotates the password after verifying the current one, and
// revokes any outstanding token.
func (s *DefaultUserService) UpdatePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	user, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("user not found: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Security.PasswordHash), []byte(currentPassword)) != nil {
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
