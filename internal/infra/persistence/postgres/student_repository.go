package postgres

import (
	"context"

	"adminapi/internal/domain/entity"
	domainerrors "adminapi/internal/domain/errors"
	"adminapi/internal/domain/repository"
	"adminapi/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// studentRepository implements the repository.StudentRepository interface.
type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository is the constructor for studentRepository.
func NewStudentRepository(db *gorm.DB) repository.StudentRepository {
	return &studentRepository{db: db}
}

// FindAll retrieves all students ordered by enrollment time.
func (repo *studentRepository) FindAll(ctx context.Context) ([]entity.Student, error) {
	var studentModels []model.StudentModel
	if err := repo.db.WithContext(ctx).
		Order("created_on ASC").
		Find(&studentModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	students := make([]entity.Student, 0, len(studentModels))
	for i := range studentModels {
		student, err := toStudentDomain(&studentModels[i])
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	return students, nil
}

// FindByID retrieves a single student by their unique id.
func (repo *studentRepository) FindByID(ctx context.Context, id uuid.UUID) (entity.Student, error) {
	var studentM model.StudentModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&studentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.Student{}, repository.ErrStudentNotFound
		}

		return entity.Student{}, errors.WithStack(err)
	}

	return toStudentDomain(&studentM)
}

// Create persists a new student.
func (repo *studentRepository) Create(ctx context.Context, student entity.Student) (entity.Student, error) {
	studentM := fromStudentDomain(student)

	if err := repo.db.WithContext(ctx).Create(studentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if violatedConstraintColumn(err, "mnr") {
				return entity.Student{}, repository.ErrDuplicateMatriculationNumber
			}

			return entity.Student{}, domainerrors.ErrStudentCreationFailed.WrapMessage("student already exists")
		}
		if isNotNullConstraintViolation(err) {
			return entity.Student{}, domainerrors.ErrStudentCreationFailed.WrapMessage("missing required student information")
		}

		return entity.Student{}, domainerrors.NewDatabaseExecuteError(err, "failed to create student")
	}

	return student, nil
}

// UpdateNames updates a student's name fields and returns the updated record.
func (repo *studentRepository) UpdateNames(ctx context.Context, id uuid.UUID, firstName, lastName string) (entity.Student, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.StudentModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"first_name": firstName, "last_name": lastName})
	if result.Error != nil {
		return entity.Student{}, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update student")
	}
	if result.RowsAffected == 0 {
		return entity.Student{}, repository.ErrStudentNotFound
	}

	return repo.FindByID(ctx, id)
}

// Delete removes a student and returns the deleted record.
func (repo *studentRepository) Delete(ctx context.Context, id uuid.UUID) (entity.Student, error) {
	student, err := repo.FindByID(ctx, id)
	if err != nil {
		return entity.Student{}, err
	}

	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.StudentModel{})
	if result.Error != nil {
		return entity.Student{}, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete student")
	}
	if result.RowsAffected == 0 {
		return entity.Student{}, repository.ErrStudentNotFound
	}

	return student, nil
}

// --- Mapper Functions ---

// toStudentDomain converts a GORM StudentModel to a domain Student entity.
func toStudentDomain(data *model.StudentModel) (entity.Student, error) {
	student, err := entity.NewStudent(data.ID, data.Mnr, data.FirstName, data.LastName, data.CreatedOn)
	if err != nil {
		return entity.Student{}, errors.Wrap(err, "stored student record failed domain validation")
	}

	return student, nil
}

// fromStudentDomain converts a domain Student entity to a GORM StudentModel.
func fromStudentDomain(student entity.Student) *model.StudentModel {
	return &model.StudentModel{
		ID:        student.ID(),
		Mnr:       student.Mnr(),
		FirstName: student.FirstName(),
		LastName:  student.LastName(),
		CreatedOn: student.CreatedOn(),
	}
}
