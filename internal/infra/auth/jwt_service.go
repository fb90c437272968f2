// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"adminapi/config"
	domainerrors "adminapi/internal/domain/errors"
	"adminapi/internal/domain/service"
)

// HS256 needs a key at least as long as the hash output.
const minSecretLen = 32

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Access and refresh tokens are signed with the same process-wide secret and
// distinguished by the "type" claim.
type jwtService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// jwtClaims is the wire shape of the token payload.
type jwtClaims struct {
	Username  string `json:"username,omitempty"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if len(cfg.JWT.Secret) < minSecretLen {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("jwt secret must be at least 32 bytes")
	}

	return &jwtService{
		secret:     []byte(cfg.JWT.Secret),
		accessTTL:  time.Duration(cfg.JWT.AccessTokenExpirationMinutes) * time.Minute,
		refreshTTL: time.Duration(cfg.JWT.RefreshTokenExpirationDays) * 24 * time.Hour,
	}, nil
}

// GenerateAccessToken creates a short-lived token for API authorization.
func (s *jwtService) GenerateAccessToken(adminID int64, username string) (string, error) {
	return s.generateToken(adminID, username, service.TokenTypeAccess, s.accessTTL)
}

// GenerateRefreshToken creates a longer-lived token used solely to mint new access tokens.
func (s *jwtService) GenerateRefreshToken(adminID int64) (string, error) {
	return s.generateToken(adminID, "", service.TokenTypeRefresh, s.refreshTTL)
}

// ValidateToken verifies the signature and the registered time claims.
// Malformed input, a bad signature, an elapsed expiry and an empty token all
// fail uniformly with the invalid-token error.
func (s *jwtService) ValidateToken(tokenString string) (*service.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("invalid or expired token: " + err.Error())
	}

	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || !parsed.Valid {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("failed to parse token claims")
	}

	adminID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("invalid subject claim")
	}

	out := &service.TokenClaims{
		AdminID:   adminID,
		Username:  claims.Username,
		TokenType: claims.TokenType,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	return out, nil
}

// ExtractAdminID validates the token and projects the subject claim.
func (s *jwtService) ExtractAdminID(tokenString string) (int64, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return 0, err
	}

	return claims.AdminID, nil
}

// ExtractUsername validates the token and projects the username claim.
func (s *jwtService) ExtractUsername(tokenString string) (string, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	return claims.Username, nil
}

// IsTokenType reports whether the token is valid and carries the expected
// "type" claim. Unlike ValidateToken it swallows every failure, including an
// empty token, and answers false. The refresh flow depends on this asymmetry;
// do not make this method return an error.
func (s *jwtService) IsTokenType(tokenString, expectedType string) bool {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return false
	}

	return claims.TokenType == expectedType
}

// AccessTokenTTL returns the configured lifetime for access tokens.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

// RefreshTokenTTL returns the configured lifetime for refresh tokens.
func (s *jwtService) RefreshTokenTTL() time.Duration {
	return s.refreshTTL
}

// generateToken is a private helper to create a JWT with specific claims.
// Timestamps are truncated to whole seconds by the NumericDate encoding.
func (s *jwtService) generateToken(adminID int64, username, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		Username:  username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(adminID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", domainerrors.ErrInternalError.WrapMessage("failed to sign token")
	}

	return signed, nil
}
