package service

import "time"

// Token type claim values carried in the "type" claim of every signed token.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenClaims is the decoded payload of a validated token.
type TokenClaims struct {
	AdminID   int64
	Username  string
	TokenType string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService defines the interface for creating and verifying signed,
// self-describing, time-bound tokens. It holds no external state beyond the
// process-wide signing secret.
//
// Note the asymmetry: ValidateToken and the Extract methods return an error
// for any invalid input, while IsTokenType swallows every validation failure
// (including an empty token) and reports false. The refresh flow relies on
// exactly this behavior, so both sides must be preserved.
type TokenService interface {
	// GenerateAccessToken creates a short-lived token carrying the admin id
	// as subject, the username, and type "access".
	GenerateAccessToken(adminID int64, username string) (string, error)

	// GenerateRefreshToken creates a longer-lived token carrying the admin id
	// as subject and type "refresh".
	GenerateRefreshToken(adminID int64) (string, error)

	// ValidateToken verifies the signature and expiry and returns the claims.
	ValidateToken(tokenString string) (*TokenClaims, error)

	// ExtractAdminID validates the token and returns the subject as an admin id.
	ExtractAdminID(tokenString string) (int64, error)

	// ExtractUsername validates the token and returns the username claim.
	ExtractUsername(tokenString string) (string, error)

	// IsTokenType validates the token and compares its "type" claim. It never
	// returns an error; all failures map to false.
	IsTokenType(tokenString, expectedType string) bool

	// AccessTokenTTL returns the configured access token lifetime.
	AccessTokenTTL() time.Duration

	// RefreshTokenTTL returns the configured refresh token lifetime.
	RefreshTokenTTL() time.Duration
}
