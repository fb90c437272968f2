package postgres

import (
	"context"

	"adminapi/internal/domain/entity"
	domainerrors "adminapi/internal/domain/errors"
	"adminapi/internal/domain/repository"
	"adminapi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminRepository implements the repository.AdminRepository interface.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

// FindByID retrieves a single admin by their store-assigned id.
func (repo *adminRepository) FindByID(ctx context.Context, id int64) (entity.Admin, error) {
	var adminM model.AdminModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.Admin{}, repository.ErrAdminNotFound
		}

		return entity.Admin{}, errors.WithStack(err)
	}

	return toAdminDomain(&adminM)
}

// FindByUsername retrieves a single admin by their unique username.
func (repo *adminRepository) FindByUsername(ctx context.Context, username string) (entity.Admin, error) {
	var adminM model.AdminModel
	if err := repo.db.WithContext(ctx).Where("username = ?", username).First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.Admin{}, repository.ErrAdminNotFound
		}

		return entity.Admin{}, errors.WithStack(err)
	}

	return toAdminDomain(&adminM)
}

// FindByEmail retrieves a single admin by their unique email address.
func (repo *adminRepository) FindByEmail(ctx context.Context, email string) (entity.Admin, error) {
	var adminM model.AdminModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.Admin{}, repository.ErrAdminNotFound
		}

		return entity.Admin{}, errors.WithStack(err)
	}

	return toAdminDomain(&adminM)
}

// Create persists a new admin. Unique constraint violations on username or
// email surface as the matching repository sentinel so the service can map a
// lost registration race to the same conflict error as the pre-check.
func (repo *adminRepository) Create(ctx context.Context, admin entity.Admin) (entity.Admin, error) {
	adminM := fromAdminDomain(admin)

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if violatedConstraintColumn(err, "email") {
				return entity.Admin{}, repository.ErrDuplicateEmail
			}

			return entity.Admin{}, repository.ErrDuplicateUsername
		}
		if isNotNullConstraintViolation(err) {
			return entity.Admin{}, domainerrors.ErrAdminCreationFailed.WrapMessage("missing required admin information")
		}

		return entity.Admin{}, domainerrors.NewDatabaseExecuteError(err, "failed to create admin")
	}

	return admin.WithID(adminM.ID), nil
}

// --- Mapper Functions ---

// toAdminDomain converts a GORM AdminModel to a domain Admin entity.
func toAdminDomain(data *model.AdminModel) (entity.Admin, error) {
	admin, err := entity.NewAdmin(
		data.ID,
		data.Username,
		data.FirstName,
		data.LastName,
		data.Email,
		data.PasswordHash,
		data.CreatedAt,
		data.UpdatedAt,
	)
	if err != nil {
		return entity.Admin{}, errors.Wrap(err, "stored admin record failed domain validation")
	}

	return admin, nil
}

// fromAdminDomain converts a domain Admin entity to a GORM AdminModel.
func fromAdminDomain(admin entity.Admin) *model.AdminModel {
	return &model.AdminModel{
		ID:           admin.ID(),
		Username:     admin.Username(),
		FirstName:    admin.FirstName(),
		LastName:     admin.LastName(),
		Email:        admin.Email(),
		PasswordHash: admin.PasswordHash(),
		CreatedAt:    admin.CreatedAt(),
		UpdatedAt:    admin.UpdatedAt(),
	}
}
