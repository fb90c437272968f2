package entity

import (
	"regexp"
	"strings"
	"time"

	domainerrors "adminapi/internal/domain/errors"

	"github.com/google/uuid"
)

const (
	studentNameMinLen = 2
	studentNameMaxLen = 50
)

var studentNamePattern = regexp.MustCompile(`^[a-zA-ZäöüÄÖÜß\s\-']+$`)

// Student represents an enrolled student record managed by administrators.
type Student struct {
	id        uuid.UUID
	mnr       string
	firstName string
	lastName  string
	createdOn time.Time
}

// NewStudent constructs a validated Student. Names must be 2-50 characters
// and contain only letters, spaces, hyphens and apostrophes.
func NewStudent(id uuid.UUID, mnr, firstName, lastName string, createdOn time.Time) (Student, error) {
	if id == uuid.Nil {
		return Student{}, domainerrors.ErrValidationFailed.WrapMessage("student id is required")
	}
	if strings.TrimSpace(mnr) == "" {
		return Student{}, domainerrors.ErrValidationFailed.WrapMessage("matriculation number is required")
	}
	if err := validateStudentName(firstName, "first name"); err != nil {
		return Student{}, err
	}
	if err := validateStudentName(lastName, "last name"); err != nil {
		return Student{}, err
	}
	if createdOn.IsZero() {
		createdOn = time.Now()
	}

	return Student{
		id:        id,
		mnr:       mnr,
		firstName: strings.TrimSpace(firstName),
		lastName:  strings.TrimSpace(lastName),
		createdOn: createdOn,
	}, nil
}

// WithUpdatedNames returns a copy with new, revalidated name fields.
func (s Student) WithUpdatedNames(firstName, lastName string) (Student, error) {
	return NewStudent(s.id, s.mnr, firstName, lastName, s.createdOn)
}

func validateStudentName(name, field string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return domainerrors.ErrValidationFailed.WrapMessage(field + " cannot be empty")
	}
	if len([]rune(trimmed)) < studentNameMinLen || len([]rune(trimmed)) > studentNameMaxLen {
		return domainerrors.ErrValidationFailed.WrapMessage(field + " must be between 2 and 50 characters")
	}
	if !studentNamePattern.MatchString(trimmed) {
		return domainerrors.ErrValidationFailed.WrapMessage(field + " contains invalid characters")
	}

	return nil
}

// ID returns the student's unique id.
func (s Student) ID() uuid.UUID { return s.id }

// Mnr returns the matriculation number.
func (s Student) Mnr() string { return s.mnr }

// FirstName returns the student's first name.
func (s Student) FirstName() string { return s.firstName }

// LastName returns the student's last name.
func (s Student) LastName() string { return s.lastName }

// CreatedOn returns the enrollment timestamp.
func (s Student) CreatedOn() time.Time { return s.createdOn }
