package repository

import (
	"context"
	"errors"

	"adminapi/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStudentNotFound is returned when a student record is not found.
var ErrStudentNotFound = errors.New("student not found")

// ErrDuplicateMatriculationNumber is returned when the unique constraint on
// the matriculation number is violated.
var ErrDuplicateMatriculationNumber = errors.New("matriculation number already exists")

// StudentRepository defines the standard operations for student persistence.
type StudentRepository interface {
	// FindAll retrieves all students ordered by enrollment time.
	FindAll(ctx context.Context) ([]entity.Student, error)

	// FindByID retrieves a single student by their unique id.
	FindByID(ctx context.Context, id uuid.UUID) (entity.Student, error)

	// Create persists a new student.
	Create(ctx context.Context, student entity.Student) (entity.Student, error)

	// UpdateNames updates a student's name fields and returns the updated record.
	UpdateNames(ctx context.Context, id uuid.UUID, firstName, lastName string) (entity.Student, error)

	// Delete removes a student and returns the deleted record.
	Delete(ctx context.Context, id uuid.UUID) (entity.Student, error)
}
