package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	deliverycontext "adminapi/internal/delivery/context"
	"adminapi/internal/domain/entity"
	domainerrors "adminapi/internal/domain/errors"
	"adminapi/internal/domain/repository"
	"adminapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// mnrAttempts bounds how often enrollment retries a colliding matriculation number.
const mnrAttempts = 5

// studentService implements the StudentUsecase interface.
type studentService struct {
	txManager   repository.TransactionManager
	studentRepo repository.StudentRepository
	logger      *slog.Logger
}

// StudentServiceParams holds dependencies for studentService, injected by Fx.
type StudentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	StudentRepo repository.StudentRepository
	Logger      *slog.Logger
}

// NewStudentService is the constructor for studentService.
func NewStudentService(params StudentServiceParams) usecase.StudentUsecase {
	return &studentService{
		txManager:   params.TxManager,
		studentRepo: params.StudentRepo,
		logger:      params.Logger,
	}
}

func (srv *studentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateStudent enrolls a new student with a system-assigned matriculation
// number. Number collisions are rare but possible, so the insert retries with
// a fresh number a bounded number of times.
func (srv *studentService) CreateStudent(ctx context.Context, input *usecase.CreateStudentInput) (entity.Student, error) {
	srv.log(ctx).Info("Enrolling student", slog.String("lastName", input.LastName))

	var created entity.Student
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		studentRepo := repoFactory.StudentRepo()

		var lastErr error
		for range mnrAttempts {
			mnr, err := newMatriculationNumber()
			if err != nil {
				return errors.Wrap(err, "failed to generate matriculation number")
			}

			student, err := entity.NewStudent(uuid.New(), mnr, input.FirstName, input.LastName, time.Now())
			if err != nil {
				return errors.Wrap(err, "student validation failed during enrollment")
			}

			created, lastErr = studentRepo.Create(ctx, student)
			if lastErr == nil {
				return nil
			}
			if !errors.Is(lastErr, repository.ErrDuplicateMatriculationNumber) {
				return errors.Wrap(lastErr, "failed to create student")
			}
		}

		return errors.Wrap(lastErr, "exhausted matriculation number attempts")
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute student enrollment transaction", slog.Any("error", err))

		return entity.Student{}, errors.Wrap(err, "failed to execute student enrollment transaction")
	}

	srv.log(ctx).Debug("Student enrolled", slog.Any("studentID", created.ID()), slog.String("mnr", created.Mnr()))

	return created, nil
}

// ListStudents retrieves all students ordered by enrollment time.
func (srv *studentService) ListStudents(ctx context.Context) ([]entity.Student, error) {
	// Single query operation - use direct repository instance
	students, err := srv.studentRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list students", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list students")
	}

	return students, nil
}

// GetStudent retrieves a single student by id.
func (srv *studentService) GetStudent(ctx context.Context, id uuid.UUID) (entity.Student, error) {
	// Single query operation - use direct repository instance
	student, err := srv.studentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return entity.Student{}, domainerrors.ErrStudentNotFound.WrapMessage("student not found: " + id.String())
		}

		srv.log(ctx).Error("Failed to get student", slog.Any("studentID", id), slog.Any("error", err))

		return entity.Student{}, errors.Wrap(err, "failed to get student")
	}

	return student, nil
}

// UpdateStudent renames an existing student.
func (srv *studentService) UpdateStudent(ctx context.Context, input *usecase.UpdateStudentInput) (entity.Student, error) {
	srv.log(ctx).Info("Updating student", slog.Any("studentID", input.ID))

	// Validate the new names through the entity before touching the database.
	if _, err := entity.NewStudent(input.ID, "pending", input.FirstName, input.LastName, time.Now()); err != nil {
		srv.log(ctx).Warn("Student validation failed during update", slog.Any("studentID", input.ID), slog.Any("error", err))

		return entity.Student{}, errors.Wrap(err, "student validation failed during update")
	}

	updated, err := srv.studentRepo.UpdateNames(ctx, input.ID, input.FirstName, input.LastName)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return entity.Student{}, domainerrors.ErrStudentNotFound.WrapMessage("student not found: " + input.ID.String())
		}

		srv.log(ctx).Error("Failed to update student", slog.Any("studentID", input.ID), slog.Any("error", err))

		return entity.Student{}, errors.Wrap(err, "failed to update student")
	}
	srv.log(ctx).Debug("Student updated", slog.Any("studentID", updated.ID()))

	return updated, nil
}

// DeleteStudent removes a student and returns the deleted record.
func (srv *studentService) DeleteStudent(ctx context.Context, id uuid.UUID) (entity.Student, error) {
	srv.log(ctx).Info("Deleting student", slog.Any("studentID", id))

	deleted, err := srv.studentRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return entity.Student{}, domainerrors.ErrStudentNotFound.WrapMessage("student not found: " + id.String())
		}

		srv.log(ctx).Error("Failed to delete student", slog.Any("studentID", id), slog.Any("error", err))

		return entity.Student{}, errors.Wrap(err, "failed to delete student")
	}
	srv.log(ctx).Debug("Student deleted", slog.Any("studentID", id))

	return deleted, nil
}

// newMatriculationNumber builds a number of the form "sYY-NNNNNN" where YY is
// the current enrollment year and NNNNNN is a random six digit suffix.
func newMatriculationNumber() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", errors.Wrap(err, "failed to read random source")
	}

	return fmt.Sprintf("s%02d-%06d", time.Now().Year()%100, n.Int64()), nil
}
