package usecase

import (
	"context"

	"adminapi/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateStudentInput defines the data required to enroll a new student.
// The matriculation number is assigned by the system, not the caller.
type CreateStudentInput struct {
	FirstName string
	LastName  string
}

// UpdateStudentInput defines the data for renaming an existing student.
type UpdateStudentInput struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
}

// StudentUsecase defines the interface for student management operations.
type StudentUsecase interface {
	CreateStudent(ctx context.Context, input *CreateStudentInput) (entity.Student, error)
	ListStudents(ctx context.Context) ([]entity.Student, error)
	GetStudent(ctx context.Context, id uuid.UUID) (entity.Student, error)
	UpdateStudent(ctx context.Context, input *UpdateStudentInput) (entity.Student, error)
	DeleteStudent(ctx context.Context, id uuid.UUID) (entity.Student, error)
}
