package postgres

import (
	"context"
	"time"

	"adminapi/internal/domain/entity"
	domainerrors "adminapi/internal/domain/errors"
	"adminapi/internal/domain/repository"
	"adminapi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// refreshTokenRepository implements the repository.RefreshTokenRepository interface.
type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository is the constructor for refreshTokenRepository.
func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

// Create persists a new refresh token record.
func (repo *refreshTokenRepository) Create(ctx context.Context, token entity.RefreshToken) (entity.RefreshToken, error) {
	tokenM := fromRefreshTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return entity.RefreshToken{}, domainerrors.ErrInvalidToken.WrapMessage("refresh token already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return entity.RefreshToken{}, domainerrors.ErrAdminNotFound.WrapMessage("invalid admin reference")
		}

		return entity.RefreshToken{}, domainerrors.NewDatabaseExecuteError(err, "failed to create refresh token")
	}

	return token.WithID(tokenM.ID), nil
}

// FindByToken retrieves a refresh token record by its token string. Expiry
// and revocation are not filtered here; the service layer checks the stored
// record's validity itself.
func (repo *refreshTokenRepository) FindByToken(ctx context.Context, token string) (entity.RefreshToken, error) {
	var tokenM model.RefreshTokenModel
	if err := repo.db.WithContext(ctx).Where("token = ?", token).First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.RefreshToken{}, repository.ErrRefreshTokenNotFound
		}

		return entity.RefreshToken{}, errors.WithStack(err)
	}

	return toRefreshTokenDomain(&tokenM)
}

// RevokeAllByAdminID bulk-marks all of an admin's refresh tokens revoked.
func (repo *refreshTokenRepository) RevokeAllByAdminID(ctx context.Context, adminID int64) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("admin_id = ?", adminID).
		Update("revoked", true).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to revoke refresh tokens")
	}

	return nil
}

// DeleteExpired removes refresh tokens whose stored expiry has passed.
func (repo *refreshTokenRepository) DeleteExpired(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.RefreshTokenModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// --- Mapper Functions ---

// toRefreshTokenDomain converts a GORM RefreshTokenModel to a domain RefreshToken entity.
func toRefreshTokenDomain(data *model.RefreshTokenModel) (entity.RefreshToken, error) {
	token, err := entity.NewRefreshToken(
		data.ID,
		data.Token,
		data.AdminID,
		data.ExpiresAt,
		data.CreatedAt,
		data.Revoked,
	)
	if err != nil {
		return entity.RefreshToken{}, errors.Wrap(err, "stored refresh token record failed domain validation")
	}

	return token, nil
}

// fromRefreshTokenDomain converts a domain RefreshToken entity to a GORM RefreshTokenModel.
func fromRefreshTokenDomain(token entity.RefreshToken) *model.RefreshTokenModel {
	return &model.RefreshTokenModel{
		ID:        token.ID(),
		Token:     token.Token(),
		AdminID:   token.AdminID(),
		ExpiresAt: token.ExpiresAt(),
		CreatedAt: token.CreatedAt(),
		Revoked:   token.Revoked(),
	}
}
