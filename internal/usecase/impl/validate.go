// Package impl contains the application-specific business rules implementations.
package impl

import (
	domainerrors "smilelink/internal/domain/errors"
	"smilelink/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every service; validator.Validate is safe for
// concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validateInput maps validator failures onto the domain taxonomy so callers
// see a 400 with the field details instead of a library error.
func validateInput(input any) error {
	if err := validate.Struct(input); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	return nil
}
