package repository

import (
	"context"
	"errors"

	"adminapi/internal/domain/entity"
)

// ErrRefreshTokenNotFound is returned when a refresh token record is not found.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the operations for refresh token persistence.
// Records are never physically deleted during normal operation; revocation
// flips a flag so a token's history stays auditable.
type RefreshTokenRepository interface {
	// Create persists a new refresh token record and returns it with the
	// store-assigned id populated.
	Create(ctx context.Context, token entity.RefreshToken) (entity.RefreshToken, error)

	// FindByToken retrieves a refresh token record by its token string.
	FindByToken(ctx context.Context, token string) (entity.RefreshToken, error)

	// RevokeAllByAdminID bulk-marks all of an admin's refresh tokens revoked.
	// This is the logout-all primitive.
	RevokeAllByAdminID(ctx context.Context, adminID int64) error

	// DeleteExpired removes refresh tokens whose stored expiry has passed.
	// Intended for periodic cleanup, not for the refresh flow.
	DeleteExpired(ctx context.Context) error
}
