// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "adminapi/internal/delivery/context"
	"adminapi/internal/domain/entity"
	domainerrors "adminapi/internal/domain/errors"
	"adminapi/internal/domain/repository"
	"adminapi/internal/domain/service"
	"adminapi/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	adminRepo        repository.AdminRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	AdminRepo        repository.AdminRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:        params.TxManager,
		adminRepo:        params.AdminRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterAdmin orchestrates the complete admin registration process.
// Uniqueness of username and email is checked up front inside the transaction;
// the database unique constraints remain the backstop against races.
func (srv *authService) RegisterAdmin(ctx context.Context, input *usecase.RegisterAdminInput) (*usecase.RegisterAdminOutput, error) {
	srv.log(ctx).Info("Starting admin registration", slog.String("username", input.Username))

	// 1. Hash the password outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newAdmin, err := entity.CreateAdmin(input.Username, input.FirstName, input.LastName, input.Email, hashedPassword)
	if err != nil {
		srv.log(ctx).Warn("Admin validation failed during registration", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "admin validation failed during registration")
	}

	var registeredAdmin entity.Admin
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adminRepo := repoFactory.AdminRepo()

		if err := srv.checkUsernameAvailable(ctx, adminRepo, newAdmin.Username()); err != nil {
			return err
		}
		if err := srv.checkEmailAvailable(ctx, adminRepo, newAdmin.Email()); err != nil {
			return err
		}

		created, createErr := adminRepo.Create(ctx, newAdmin)
		if createErr != nil {
			return srv.mapAdminCreateError(createErr)
		}
		registeredAdmin = created

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute admin registration transaction", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute admin registration transaction")
	}

	srv.log(ctx).Debug("Admin registration completed", slog.Int64("adminID", registeredAdmin.ID()))

	return &usecase.RegisterAdminOutput{Admin: registeredAdmin}, nil
}

func (srv *authService) checkUsernameAvailable(ctx context.Context, adminRepo repository.AdminRepository, username string) error {
	_, err := adminRepo.FindByUsername(ctx, username)
	if err == nil {
		return domainerrors.ErrUsernameAlreadyExists.WrapMessage("username already taken: " + username)
	}
	if !errors.Is(err, repository.ErrAdminNotFound) {
		return errors.Wrap(err, "failed to check username availability")
	}

	return nil
}

func (srv *authService) checkEmailAvailable(ctx context.Context, adminRepo repository.AdminRepository, email string) error {
	_, err := adminRepo.FindByEmail(ctx, email)
	if err == nil {
		return domainerrors.ErrEmailAlreadyExists.WrapMessage("email already registered: " + email)
	}
	if !errors.Is(err, repository.ErrAdminNotFound) {
		return errors.Wrap(err, "failed to check email availability")
	}

	return nil
}

// mapAdminCreateError translates unique constraint violations raced past the
// pre-checks into the same conflict errors the pre-checks produce.
func (srv *authService) mapAdminCreateError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateUsername):
		return domainerrors.ErrUsernameAlreadyExists.WrapMessage("username already taken")
	case errors.Is(err, repository.ErrDuplicateEmail):
		return domainerrors.ErrEmailAlreadyExists.WrapMessage("email already registered")
	default:
		return errors.Wrap(err, "failed to create admin during registration")
	}
}

// Login orchestrates the admin login process and issues a fresh token pair.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting admin login", slog.String("username", input.Username))

	// Single query operation - use direct repository instance
	admin, err := srv.adminRepo.FindByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		if errors.Is(err, repository.ErrAdminNotFound) {
			// Same error as a password mismatch so usernames cannot be probed.
			return nil, domainerrors.ErrAuthenticationFailed.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find admin by username")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, admin.PasswordHash()) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrAuthenticationFailed))

		return nil, domainerrors.ErrAuthenticationFailed.WrapMessage("login failed")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(admin.ID(), admin.Username())
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", slog.Int64("adminID", admin.ID()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}

	refreshTokenString, err := srv.tokenService.GenerateRefreshToken(admin.ID())
	if err != nil {
		srv.log(ctx).Error("Failed to generate refresh token", slog.Int64("adminID", admin.ID()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate refresh token")
	}

	if err := srv.storeRefreshToken(ctx, admin.ID(), refreshTokenString); err != nil {
		srv.log(ctx).Error("Failed to store refresh token during login", slog.Int64("adminID", admin.ID()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store refresh token during login")
	}
	srv.log(ctx).Debug("Admin logged in successfully", slog.Int64("adminID", admin.ID()))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		ExpiresIn:    int(srv.tokenService.AccessTokenTTL().Seconds()),
	}, nil
}

func (srv *authService) storeRefreshToken(ctx context.Context, adminID int64, refreshTokenString string) error {
	record, err := entity.CreateRefreshToken(refreshTokenString, adminID, time.Now().Add(srv.tokenService.RefreshTokenTTL()))
	if err != nil {
		return errors.Wrap(err, "failed to build refresh token record")
	}

	// Single operation - use direct repository instance
	if _, err := srv.refreshTokenRepo.Create(ctx, record); err != nil {
		return errors.Wrap(err, "failed to persist refresh token")
	}

	return nil
}

// Refresh issues a new access token against a previously stored refresh token.
// The refresh token itself is not rotated and stays valid until it expires or
// is revoked.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	// 1. The presented token must be a refresh token, never an access token.
	if !srv.tokenService.IsTokenType(input.RefreshToken, service.TokenTypeRefresh) {
		srv.log(ctx).Warn("Refresh rejected, token is not a valid refresh token")

		return nil, domainerrors.ErrInvalidToken.WrapMessage("token is not a valid refresh token")
	}

	adminID, err := srv.tokenService.ExtractAdminID(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to extract admin id from refresh token")
	}

	// 2. The token must still be on record and neither revoked nor expired.
	record, err := srv.refreshTokenRepo.FindByToken(ctx, input.RefreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh rejected, token not on record", slog.Int64("adminID", adminID))

		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.ErrInvalidToken.WrapMessage("refresh token not recognized")
		}

		return nil, errors.Wrap(err, "failed to look up refresh token")
	}

	if !record.IsValid() {
		srv.log(ctx).Warn("Refresh rejected, token revoked or expired", slog.Int64("adminID", adminID))

		return nil, domainerrors.ErrInvalidToken.WrapMessage("refresh token revoked or expired")
	}

	if record.AdminID() != adminID {
		srv.log(ctx).Warn("Refresh rejected, token subject mismatch", slog.Int64("adminID", adminID))

		return nil, domainerrors.ErrInvalidToken.WrapMessage("refresh token subject mismatch")
	}

	// 3. The admin behind the token must still exist.
	admin, err := srv.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		srv.log(ctx).Warn("Refresh rejected, admin no longer exists", slog.Int64("adminID", adminID))

		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrAdminNotFound.WrapMessage("admin account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load admin for refresh")
	}

	newAccessToken, err := srv.tokenService.GenerateAccessToken(admin.ID(), admin.Username())
	if err != nil {
		srv.log(ctx).Error("Failed to generate new access token", slog.Int64("adminID", adminID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate new access token")
	}
	srv.log(ctx).Debug("Access token refreshed", slog.Int64("adminID", adminID))

	return &usecase.RefreshOutput{
		AccessToken: newAccessToken,
		ExpiresIn:   int(srv.tokenService.AccessTokenTTL().Seconds()),
	}, nil
}

// RevokeAllSessions invalidates every stored refresh token belonging to the admin.
func (srv *authService) RevokeAllSessions(ctx context.Context, adminID int64) error {
	srv.log(ctx).Info("Revoking all sessions", slog.Int64("adminID", adminID))

	// Single operation - use direct repository instance
	if err := srv.refreshTokenRepo.RevokeAllByAdminID(ctx, adminID); err != nil {
		srv.log(ctx).Error("Failed to revoke sessions", slog.Int64("adminID", adminID), slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke sessions")
	}
	srv.log(ctx).Info("All sessions revoked", slog.Int64("adminID", adminID))

	return nil
}

// CleanupExpiredTokens removes refresh tokens whose expiry has passed. It is
// driven by the periodic cleanup job, not by any request path.
func (srv *authService) CleanupExpiredTokens(ctx context.Context) error {
	srv.log(ctx).Debug("Cleaning up expired refresh tokens")

	// Single operation - use direct repository instance
	if err := srv.refreshTokenRepo.DeleteExpired(ctx); err != nil {
		srv.log(ctx).Error("Failed to clean up expired refresh tokens", slog.Any("error", err))

		return errors.Wrap(err, "failed to clean up expired refresh tokens")
	}

	return nil
}
