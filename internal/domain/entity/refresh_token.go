package entity

import (
	"strings"
	"time"

	domainerrors "adminapi/internal/domain/errors"
)

// RefreshToken represents one issued refresh credential, persisted server-side.
// The token string is the opaque signed blob the client holds; the stored
// record adds an independent expiry and a revocation flag on top of the
// token's own claims.
type RefreshToken struct {
	id        int64
	token     string
	adminID   int64
	expiresAt time.Time
	createdAt time.Time
	revoked   bool
}

// NewRefreshToken constructs a validated RefreshToken. Token, admin id and
// expiry are mandatory; a zero createdAt defaults to the current time.
func NewRefreshToken(id int64, token string, adminID int64, expiresAt, createdAt time.Time, revoked bool) (RefreshToken, error) {
	if strings.TrimSpace(token) == "" {
		return RefreshToken{}, domainerrors.ErrValidationFailed.WrapMessage("token cannot be empty")
	}
	if adminID <= 0 {
		return RefreshToken{}, domainerrors.ErrValidationFailed.WrapMessage("admin id is required")
	}
	if expiresAt.IsZero() {
		return RefreshToken{}, domainerrors.ErrValidationFailed.WrapMessage("expiry is required")
	}
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return RefreshToken{
		id:        id,
		token:     token,
		adminID:   adminID,
		expiresAt: expiresAt,
		createdAt: createdAt,
		revoked:   revoked,
	}, nil
}

// CreateRefreshToken is the factory for a freshly issued, not yet persisted token.
func CreateRefreshToken(token string, adminID int64, expiresAt time.Time) (RefreshToken, error) {
	return NewRefreshToken(0, token, adminID, expiresAt, time.Now(), false)
}

// WithID returns a copy carrying the store-assigned id.
func (t RefreshToken) WithID(id int64) RefreshToken {
	t.id = id

	return t
}

// Revoke returns a revoked copy of the token.
func (t RefreshToken) Revoke() RefreshToken {
	t.revoked = true

	return t
}

// IsExpired reports whether the stored expiry has passed.
func (t RefreshToken) IsExpired() bool {
	return time.Now().After(t.expiresAt)
}

// IsValid reports whether the token is usable: not revoked and not expired.
// This is checked in addition to the signed token's own expiry claim; both
// must hold for a refresh to succeed.
func (t RefreshToken) IsValid() bool {
	return !t.revoked && !t.IsExpired()
}

// ID returns the store-assigned id, or 0 if not persisted.
func (t RefreshToken) ID() int64 { return t.id }

// Token returns the opaque signed token string.
func (t RefreshToken) Token() string { return t.token }

// AdminID returns the owning admin's id.
func (t RefreshToken) AdminID() int64 { return t.adminID }

// ExpiresAt returns the stored expiry timestamp.
func (t RefreshToken) ExpiresAt() time.Time { return t.expiresAt }

// CreatedAt returns the issuance timestamp.
func (t RefreshToken) CreatedAt() time.Time { return t.createdAt }

// Revoked reports whether the token was explicitly invalidated.
func (t RefreshToken) Revoked() bool { return t.revoked }
