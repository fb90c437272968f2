package impl

import (
	"context"
	"testing"
	"time"

	"adminapi/internal/domain/entity"
	domainerrors "adminapi/internal/domain/errors"
	"adminapi/internal/domain/repository"
	mockRepo "adminapi/internal/mocks/repository"
	"adminapi/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_RegisterAdmin_UsernameTaken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	admin := testAdmin(t)
	input := &usecase.RegisterAdminInput{
		Username:  "jdoe",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "new@example.com",
		Password:  "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAdminRepo := mockRepo.NewMockAdminRepository(t)

			mockFactory.EXPECT().AdminRepo().Return(mockAdminRepo)
			mockAdminRepo.EXPECT().FindByUsername(ctx, input.Username).Return(admin, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterAdmin(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameAlreadyExists)
}

func TestAuthService_RegisterAdmin_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	admin := testAdmin(t)
	input := &usecase.RegisterAdminInput{
		Username:  "newuser",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@example.com",
		Password:  "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAdminRepo := mockRepo.NewMockAdminRepository(t)

			mockFactory.EXPECT().AdminRepo().Return(mockAdminRepo)
			mockAdminRepo.EXPECT().FindByUsername(ctx, input.Username).Return(entity.Admin{}, repository.ErrAdminNotFound)
			mockAdminRepo.EXPECT().FindByEmail(ctx, input.Email).Return(admin, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterAdmin(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
}

func TestAuthService_RegisterAdmin_DuplicateRace(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterAdminInput{
		Username:  "jdoe",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@example.com",
		Password:  "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	// Pre-checks pass but the insert loses a race against a concurrent
	// registration and hits the unique constraint.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAdminRepo := mockRepo.NewMockAdminRepository(t)

			mockFactory.EXPECT().AdminRepo().Return(mockAdminRepo)
			mockAdminRepo.EXPECT().FindByUsername(ctx, input.Username).Return(entity.Admin{}, repository.ErrAdminNotFound)
			mockAdminRepo.EXPECT().FindByEmail(ctx, input.Email).Return(entity.Admin{}, repository.ErrAdminNotFound)
			mockAdminRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("entity.Admin")).
				Return(entity.Admin{}, repository.ErrDuplicateUsername)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterAdmin(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameAlreadyExists)
}

func TestAuthService_RegisterAdmin_InvalidEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterAdminInput{
		Username:  "jdoe",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "not-an-email",
		Password:  "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	output, err := fx.service.RegisterAdmin(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Username: "ghost", Password: "whatever"}

	fx.adminRepo.EXPECT().FindByUsername(ctx, "ghost").Return(entity.Admin{}, repository.ErrAdminNotFound)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	admin := testAdmin(t)
	input := &usecase.LoginInput{Username: "jdoe", Password: "wrong"}

	fx.adminRepo.EXPECT().FindByUsername(ctx, "jdoe").Return(admin, nil)
	fx.hasher.EXPECT().Check("wrong", admin.PasswordHash()).Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	// Same error as an unknown username so accounts cannot be enumerated.
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
}

func TestAuthService_Refresh_WrongTokenType(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RefreshInput{RefreshToken: "an-access-token"}

	fx.tokenService.EXPECT().IsTokenType("an-access-token", "refresh").Return(false)

	output, err := fx.service.Refresh(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_Refresh_TokenNotOnRecord(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RefreshInput{RefreshToken: "refresh-token"}

	fx.tokenService.EXPECT().IsTokenType("refresh-token", "refresh").Return(true)
	fx.tokenService.EXPECT().ExtractAdminID("refresh-token").Return(int64(42), nil)
	fx.refreshTokenRepo.EXPECT().
		FindByToken(ctx, "refresh-token").
		Return(entity.RefreshToken{}, repository.ErrRefreshTokenNotFound)

	output, err := fx.service.Refresh(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_Refresh_RevokedToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	record := testRefreshRecord(t, "refresh-token", 42).Revoke()
	input := &usecase.RefreshInput{RefreshToken: "refresh-token"}

	fx.tokenService.EXPECT().IsTokenType("refresh-token", "refresh").Return(true)
	fx.tokenService.EXPECT().ExtractAdminID("refresh-token").Return(int64(42), nil)
	fx.refreshTokenRepo.EXPECT().FindByToken(ctx, "refresh-token").Return(record, nil)

	output, err := fx.service.Refresh(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_Refresh_ExpiredRecord(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	record, err := entity.NewRefreshToken(7, "refresh-token", 42, time.Now().Add(-time.Minute), time.Now().Add(-time.Hour), false)
	require.NoError(t, err)
	input := &usecase.RefreshInput{RefreshToken: "refresh-token"}

	fx.tokenService.EXPECT().IsTokenType("refresh-token", "refresh").Return(true)
	fx.tokenService.EXPECT().ExtractAdminID("refresh-token").Return(int64(42), nil)
	fx.refreshTokenRepo.EXPECT().FindByToken(ctx, "refresh-token").Return(record, nil)

	output, err := fx.service.Refresh(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_Refresh_SubjectMismatch(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	record := testRefreshRecord(t, "refresh-token", 99)
	input := &usecase.RefreshInput{RefreshToken: "refresh-token"}

	fx.tokenService.EXPECT().IsTokenType("refresh-token", "refresh").Return(true)
	fx.tokenService.EXPECT().ExtractAdminID("refresh-token").Return(int64(42), nil)
	fx.refreshTokenRepo.EXPECT().FindByToken(ctx, "refresh-token").Return(record, nil)

	output, err := fx.service.Refresh(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_Refresh_AdminGone(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	record := testRefreshRecord(t, "refresh-token", 42)
	input := &usecase.RefreshInput{RefreshToken: "refresh-token"}

	fx.tokenService.EXPECT().IsTokenType("refresh-token", "refresh").Return(true)
	fx.tokenService.EXPECT().ExtractAdminID("refresh-token").Return(int64(42), nil)
	fx.refreshTokenRepo.EXPECT().FindByToken(ctx, "refresh-token").Return(record, nil)
	fx.adminRepo.EXPECT().FindByID(ctx, int64(42)).Return(entity.Admin{}, repository.ErrAdminNotFound)

	output, err := fx.service.Refresh(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	// A valid token whose admin is gone is not reported as a token problem.
	assert.ErrorIs(t, err, domainerrors.ErrAdminNotFound)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_RevokeAllSessions_RepositoryError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	repoErr := errors.New("connection reset")

	fx.refreshTokenRepo.EXPECT().RevokeAllByAdminID(ctx, int64(42)).Return(repoErr)

	err := fx.service.RevokeAllSessions(ctx, 42)

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestAuthService_CleanupExpiredTokens_RepositoryError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	repoErr := errors.New("connection reset")

	fx.refreshTokenRepo.EXPECT().DeleteExpired(ctx).Return(repoErr)

	err := fx.service.CleanupExpiredTokens(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}
