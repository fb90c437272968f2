// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"adminapi/internal/domain/entity"
)

// Domain-specific errors for admin persistence.
var (
	// ErrAdminNotFound is returned when an admin record is not found.
	ErrAdminNotFound = errors.New("admin not found")
	// ErrDuplicateUsername is returned when a unique constraint on the
	// username rejects an insert.
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrDuplicateEmail is returned when a unique constraint on the
	// email rejects an insert.
	ErrDuplicateEmail = errors.New("email already taken")
)

// AdminRepository defines the standard operations for admin persistence.
// The application layer depends on this interface, not the concrete implementation.
type AdminRepository interface {
	// FindByID retrieves a single admin by their store-assigned id.
	FindByID(ctx context.Context, id int64) (entity.Admin, error)

	// FindByUsername retrieves a single admin by their unique username.
	FindByUsername(ctx context.Context, username string) (entity.Admin, error)

	// FindByEmail retrieves a single admin by their unique email address.
	FindByEmail(ctx context.Context, email string) (entity.Admin, error)

	// Create persists a new admin and returns the saved entity with the
	// store-assigned id populated. The store's unique constraints are the
	// final arbiter for username/email duplicates; violations surface as
	// ErrDuplicateUsername or ErrDuplicateEmail.
	Create(ctx context.Context, admin entity.Admin) (entity.Admin, error)
}
