package entity

import (
	"strings"
	"testing"
	"time"

	domainerrors "adminapi/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAdmin_Success(t *testing.T) {
	admin, err := CreateAdmin("jdoe", "Jane", "Doe", "Jane.Doe@Example.COM", "hash")

	require.NoError(t, err)
	assert.Equal(t, int64(0), admin.ID())
	assert.Equal(t, "jdoe", admin.Username())
	assert.Equal(t, "Jane", admin.FirstName())
	assert.Equal(t, "Doe", admin.LastName())
	assert.Equal(t, "jane.doe@example.com", admin.Email(), "email is normalized to lowercase")
	assert.Equal(t, "hash", admin.PasswordHash())
	assert.WithinDuration(t, time.Now(), admin.CreatedAt(), time.Second)
}

func TestNewAdmin_Validation(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		username string
		first    string
		last     string
		email    string
		hash     string
	}{
		{"empty username", "", "Jane", "Doe", "jane@example.com", "hash"},
		{"username too short", "ab", "Jane", "Doe", "jane@example.com", "hash"},
		{"username too long", strings.Repeat("a", 51), "Jane", "Doe", "jane@example.com", "hash"},
		{"empty first name", "jdoe", "", "Doe", "jane@example.com", "hash"},
		{"first name too long", "jdoe", strings.Repeat("a", 101), "Doe", "jane@example.com", "hash"},
		{"empty last name", "jdoe", "Jane", "   ", "jane@example.com", "hash"},
		{"last name too long", "jdoe", "Jane", strings.Repeat("a", 101), "jane@example.com", "hash"},
		{"empty email", "jdoe", "Jane", "Doe", "", "hash"},
		{"email without at", "jdoe", "Jane", "Doe", "jane.example.com", "hash"},
		{"email without tld", "jdoe", "Jane", "Doe", "jane@example", "hash"},
		{"email with one letter tld", "jdoe", "Jane", "Doe", "jane@example.c", "hash"},
		{"empty password hash", "jdoe", "Jane", "Doe", "jane@example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAdmin(1, tt.username, tt.first, tt.last, tt.email, tt.hash, now, now)

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestNewAdmin_TrimsFields(t *testing.T) {
	now := time.Now()

	admin, err := NewAdmin(1, "  jdoe  ", " Jane ", " Doe ", " jane@example.com ", "hash", now, now)

	require.NoError(t, err)
	assert.Equal(t, "jdoe", admin.Username())
	assert.Equal(t, "Jane", admin.FirstName())
	assert.Equal(t, "Doe", admin.LastName())
	assert.Equal(t, "jane@example.com", admin.Email())
}

func TestAdmin_WithID(t *testing.T) {
	admin, err := CreateAdmin("jdoe", "Jane", "Doe", "jane@example.com", "hash")
	require.NoError(t, err)

	persisted := admin.WithID(7)

	assert.Equal(t, int64(7), persisted.ID())
	assert.Equal(t, int64(0), admin.ID(), "original value is untouched")
}

func TestAdmin_WithUpdatedInfo(t *testing.T) {
	admin, err := CreateAdmin("jdoe", "Jane", "Doe", "jane@example.com", "hash")
	require.NoError(t, err)

	updated, err := admin.WithUpdatedInfo("Janet", "Doer", "janet@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Janet", updated.FirstName())
	assert.Equal(t, "janet@example.com", updated.Email())
	assert.Equal(t, admin.Username(), updated.Username())

	_, err = admin.WithUpdatedInfo("", "Doer", "janet@example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdmin_WithUpdatedPassword(t *testing.T) {
	admin, err := CreateAdmin("jdoe", "Jane", "Doe", "jane@example.com", "hash")
	require.NoError(t, err)

	updated, err := admin.WithUpdatedPassword("new-hash")
	require.NoError(t, err)
	assert.Equal(t, "new-hash", updated.PasswordHash())

	_, err = admin.WithUpdatedPassword("")
	require.Error(t, err)
}
