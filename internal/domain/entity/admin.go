// Package entity contains the core business objects of the project.
// Entities are immutable: constructors validate every field up front and
// updates produce new instances, so a partially valid entity never exists.
package entity

import (
	"regexp"
	"strings"
	"time"

	domainerrors "adminapi/internal/domain/errors"
)

const (
	adminUsernameMinLen = 3
	adminUsernameMaxLen = 50
	adminNameMaxLen     = 100
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Admin represents a registered administrator account.
// The zero id means the admin has not been persisted yet; the store assigns
// an id on save via WithID.
type Admin struct {
	id           int64
	username     string
	firstName    string
	lastName     string
	email        string
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewAdmin constructs a fully validated Admin. The email is normalized to
// lowercase and all name fields are trimmed. Any violation fails construction
// with a validation error.
func NewAdmin(id int64, username, firstName, lastName, email, passwordHash string, createdAt, updatedAt time.Time) (Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return Admin{}, domainerrors.ErrValidationFailed.WrapMessage("username cannot be empty")
	}
	if len(username) < adminUsernameMinLen || len(username) > adminUsernameMaxLen {
		return Admin{}, domainerrors.ErrValidationFailed.WrapMessage("username must be between 3 and 50 characters")
	}

	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		return Admin{}, domainerrors.ErrValidationFailed.WrapMessage("first name cannot be empty")
	}
	if len(firstName) > adminNameMaxLen {
		return Admin{}, domainerrors.ErrValidationFailed.WrapMessage("first name must not exceed 100 characters")
	}

	lastName = strings.TrimSpace(lastName)
	if lastName == "" {
		return Admin{}, domainerrors.ErrValidationFailed.WrapMessage("last name cannot be empty")
	}
	if len(lastName) > adminNameMaxLen {
		return Admin{}, domainerrors.ErrValidationFailed.WrapMessage("last name must not exceed 100 characters")
	}

	email = strings.TrimSpace(email)
	if email == "" {
		return Admin{}, domainerrors.ErrValidationFailed.WrapMessage("email cannot be empty")
	}
	if !emailPattern.MatchString(email) {
		return Admin{}, domainerrors.ErrValidationFailed.WrapMessage("invalid email format")
	}

	if strings.TrimSpace(passwordHash) == "" {
		return Admin{}, domainerrors.ErrValidationFailed.WrapMessage("password hash cannot be empty")
	}

	return Admin{
		id:           id,
		username:     username,
		firstName:    firstName,
		lastName:     lastName,
		email:        strings.ToLower(email),
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// CreateAdmin is the factory for a brand-new, not yet persisted Admin.
// It stamps createdAt and updatedAt with the current time and leaves the id unset.
func CreateAdmin(username, firstName, lastName, email, passwordHash string) (Admin, error) {
	now := time.Now()

	return NewAdmin(0, username, firstName, lastName, email, passwordHash, now, now)
}

// WithID returns a copy of the admin carrying the store-assigned id.
func (a Admin) WithID(id int64) Admin {
	a.id = id
	a.updatedAt = time.Now()

	return a
}

// WithUpdatedInfo returns a copy with new name and email fields, revalidated.
func (a Admin) WithUpdatedInfo(firstName, lastName, email string) (Admin, error) {
	return NewAdmin(a.id, a.username, firstName, lastName, email, a.passwordHash, a.createdAt, time.Now())
}

// WithUpdatedPassword returns a copy carrying a new password hash.
func (a Admin) WithUpdatedPassword(passwordHash string) (Admin, error) {
	return NewAdmin(a.id, a.username, a.firstName, a.lastName, a.email, passwordHash, a.createdAt, time.Now())
}

// ID returns the store-assigned id, or 0 if the admin has not been persisted.
func (a Admin) ID() int64 { return a.id }

// Username returns the unique login name.
func (a Admin) Username() string { return a.username }

// FirstName returns the admin's first name.
func (a Admin) FirstName() string { return a.firstName }

// LastName returns the admin's last name.
func (a Admin) LastName() string { return a.lastName }

// Email returns the lowercase-normalized email address.
func (a Admin) Email() string { return a.email }

// PasswordHash returns the opaque credential hash. It must never leave the
// authentication layer.
func (a Admin) PasswordHash() string { return a.passwordHash }

// CreatedAt returns the creation timestamp.
func (a Admin) CreatedAt() time.Time { return a.createdAt }

// UpdatedAt returns the last modification timestamp.
func (a Admin) UpdatedAt() time.Time { return a.updatedAt }
