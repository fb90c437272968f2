// Package validator adapts struct tag validation for echo's request binding.
package validator

import (
	domainerrors "adminapi/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator implements echo.Validator using struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// New builds the validator echo uses for every c.Validate call.
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks the bound request struct and maps failures onto the
// application's validation error so the error handler renders a 400.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
