// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"adminapi/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterAdminInput defines the data required to register a new admin account.
type RegisterAdminInput struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// LoginInput defines the data required for an admin to log in.
type LoginInput struct {
	Username string
	Password string
}

// RefreshInput carries the refresh token presented for a new access token.
type RefreshInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// RegisterAdminOutput returns the newly created admin's basic information.
type RegisterAdminOutput struct {
	Admin entity.Admin
}

// LoginOutput returns the generated token pair after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
}

// RefreshOutput returns the newly issued access token. The refresh token
// itself is not rotated.
type RefreshOutput struct {
	AccessToken string
	ExpiresIn   int
}

// AuthUsecase defines the interface for authentication-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	RegisterAdmin(ctx context.Context, input *RegisterAdminInput) (*RegisterAdminOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)
	RevokeAllSessions(ctx context.Context, adminID int64) error
	CleanupExpiredTokens(ctx context.Context) error
}
