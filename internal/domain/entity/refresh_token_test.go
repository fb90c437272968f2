package entity

import (
	"testing"
	"time"

	domainerrors "adminapi/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRefreshToken_Success(t *testing.T) {
	expiry := time.Now().Add(30 * 24 * time.Hour)

	token, err := CreateRefreshToken("opaque-token", 42, expiry)

	require.NoError(t, err)
	assert.Equal(t, int64(0), token.ID())
	assert.Equal(t, "opaque-token", token.Token())
	assert.Equal(t, int64(42), token.AdminID())
	assert.Equal(t, expiry, token.ExpiresAt())
	assert.False(t, token.Revoked())
	assert.WithinDuration(t, time.Now(), token.CreatedAt(), time.Second)
}

func TestNewRefreshToken_Validation(t *testing.T) {
	expiry := time.Now().Add(time.Hour)

	tests := []struct {
		name    string
		token   string
		adminID int64
		expiry  time.Time
	}{
		{"empty token", "", 42, expiry},
		{"blank token", "   ", 42, expiry},
		{"zero admin id", "opaque-token", 0, expiry},
		{"negative admin id", "opaque-token", -1, expiry},
		{"zero expiry", "opaque-token", 42, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRefreshToken(1, tt.token, tt.adminID, tt.expiry, time.Now(), false)

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestRefreshToken_IsValid(t *testing.T) {
	live, err := CreateRefreshToken("opaque-token", 42, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, live.IsExpired())
	assert.True(t, live.IsValid())

	expired, err := NewRefreshToken(1, "opaque-token", 42, time.Now().Add(-time.Minute), time.Now().Add(-time.Hour), false)
	require.NoError(t, err)
	assert.True(t, expired.IsExpired())
	assert.False(t, expired.IsValid())

	revoked := live.Revoke()
	assert.True(t, revoked.Revoked())
	assert.False(t, revoked.IsValid(), "revocation wins even before expiry")
	assert.False(t, live.Revoked(), "original value is untouched")

	// Revoked and expired stays invalid.
	assert.False(t, expired.Revoke().IsValid())
}

func TestRefreshToken_WithID(t *testing.T) {
	token, err := CreateRefreshToken("opaque-token", 42, time.Now().Add(time.Hour))
	require.NoError(t, err)

	persisted := token.WithID(9)

	assert.Equal(t, int64(9), persisted.ID())
	assert.Equal(t, int64(0), token.ID())
}
