package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"adminapi/internal/domain/entity"
	domainerrors "adminapi/internal/domain/errors"
	"adminapi/internal/domain/repository"
	mockRepo "adminapi/internal/mocks/repository"
	"adminapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type studentServiceFixtures struct {
	service     usecase.StudentUsecase
	txManager   *mockRepo.MockTransactionManager
	studentRepo *mockRepo.MockStudentRepository
}

func createTestStudentService(t *testing.T) studentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	studentRepo := mockRepo.NewMockStudentRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewStudentService(StudentServiceParams{
		TxManager:   txManager,
		StudentRepo: studentRepo,
		Logger:      logger,
	})

	return studentServiceFixtures{
		service:     service,
		txManager:   txManager,
		studentRepo: studentRepo,
	}
}

func testStudent(t *testing.T) entity.Student {
	t.Helper()

	student, err := entity.NewStudent(uuid.New(), "s26-123456", "Max", "Mustermann", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	return student
}

func TestStudentService_CreateStudent_Success(t *testing.T) {
	fx := createTestStudentService(t)

	ctx := context.Background()
	input := &usecase.CreateStudentInput{FirstName: "Max", LastName: "Mustermann"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockStudentRepo := mockRepo.NewMockStudentRepository(t)

			mockFactory.EXPECT().StudentRepo().Return(mockStudentRepo)
			mockStudentRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("entity.Student")).
				RunAndReturn(func(ctx context.Context, student entity.Student) (entity.Student, error) {
					assert.Equal(t, "Max", student.FirstName())
					assert.Equal(t, "Mustermann", student.LastName())
					assert.NotEmpty(t, student.Mnr())
					assert.NotEqual(t, uuid.Nil, student.ID())

					return student, nil
				})

			return fn(mockFactory)
		})

	student, err := fx.service.CreateStudent(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Max", student.FirstName())
	assert.Regexp(t, `^s\d{2}-\d{6}$`, student.Mnr())
}

func TestStudentService_CreateStudent_MnrCollisionRetries(t *testing.T) {
	fx := createTestStudentService(t)

	ctx := context.Background()
	input := &usecase.CreateStudentInput{FirstName: "Max", LastName: "Mustermann"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockStudentRepo := mockRepo.NewMockStudentRepository(t)

			mockFactory.EXPECT().StudentRepo().Return(mockStudentRepo)

			// First insert collides on the matriculation number, second succeeds.
			mockStudentRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("entity.Student")).
				Return(entity.Student{}, repository.ErrDuplicateMatriculationNumber).
				Once()
			mockStudentRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("entity.Student")).
				RunAndReturn(func(ctx context.Context, student entity.Student) (entity.Student, error) {
					return student, nil
				}).
				Once()

			return fn(mockFactory)
		})

	student, err := fx.service.CreateStudent(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Mustermann", student.LastName())
}

func TestStudentService_CreateStudent_InvalidName(t *testing.T) {
	fx := createTestStudentService(t)

	ctx := context.Background()
	input := &usecase.CreateStudentInput{FirstName: "Max", LastName: "123"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockStudentRepo := mockRepo.NewMockStudentRepository(t)

			mockFactory.EXPECT().StudentRepo().Return(mockStudentRepo)

			return fn(mockFactory)
		})

	_, err := fx.service.CreateStudent(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestStudentService_ListStudents_Success(t *testing.T) {
	fx := createTestStudentService(t)

	ctx := context.Background()
	students := []entity.Student{testStudent(t), testStudent(t)}

	fx.studentRepo.EXPECT().FindAll(ctx).Return(students, nil)

	result, err := fx.service.ListStudents(ctx)

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestStudentService_GetStudent_NotFound(t *testing.T) {
	fx := createTestStudentService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.studentRepo.EXPECT().FindByID(ctx, id).Return(entity.Student{}, repository.ErrStudentNotFound)

	_, err := fx.service.GetStudent(ctx, id)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStudentNotFound)
}

func TestStudentService_UpdateStudent_Success(t *testing.T) {
	fx := createTestStudentService(t)

	ctx := context.Background()
	student := testStudent(t)
	updated, err := student.WithUpdatedNames("Erika", "Musterfrau")
	require.NoError(t, err)

	input := &usecase.UpdateStudentInput{ID: student.ID(), FirstName: "Erika", LastName: "Musterfrau"}

	fx.studentRepo.EXPECT().
		UpdateNames(ctx, student.ID(), "Erika", "Musterfrau").
		Return(updated, nil)

	result, err := fx.service.UpdateStudent(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Erika", result.FirstName())
	assert.Equal(t, "Musterfrau", result.LastName())
	assert.Equal(t, student.Mnr(), result.Mnr())
}

func TestStudentService_UpdateStudent_InvalidName(t *testing.T) {
	fx := createTestStudentService(t)

	ctx := context.Background()
	input := &usecase.UpdateStudentInput{ID: uuid.New(), FirstName: "", LastName: "Musterfrau"}

	_, err := fx.service.UpdateStudent(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestStudentService_UpdateStudent_NotFound(t *testing.T) {
	fx := createTestStudentService(t)

	ctx := context.Background()
	id := uuid.New()
	input := &usecase.UpdateStudentInput{ID: id, FirstName: "Erika", LastName: "Musterfrau"}

	fx.studentRepo.EXPECT().
		UpdateNames(ctx, id, "Erika", "Musterfrau").
		Return(entity.Student{}, repository.ErrStudentNotFound)

	_, err := fx.service.UpdateStudent(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStudentNotFound)
}

func TestStudentService_DeleteStudent_Success(t *testing.T) {
	fx := createTestStudentService(t)

	ctx := context.Background()
	student := testStudent(t)

	fx.studentRepo.EXPECT().Delete(ctx, student.ID()).Return(student, nil)

	deleted, err := fx.service.DeleteStudent(ctx, student.ID())

	require.NoError(t, err)
	assert.Equal(t, student.ID(), deleted.ID())
}

func TestStudentService_DeleteStudent_NotFound(t *testing.T) {
	fx := createTestStudentService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.studentRepo.EXPECT().Delete(ctx, id).Return(entity.Student{}, repository.ErrStudentNotFound)

	_, err := fx.service.DeleteStudent(ctx, id)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStudentNotFound)
}
