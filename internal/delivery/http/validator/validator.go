// Package validator wires go-playground/validator into Echo's request
// validation hook.
package validator

import (
	domainerrors "gemstore/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator implements echo.Validator on top of the struct-tag
// validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New builds the validator used for every bound request payload.
func New() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks the struct tags of a bound request and translates failures
// into the application's validation error.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
