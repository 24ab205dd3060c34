package config

import (
	"github.com/arthur-debert/permly/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// validate is the singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate validates the settings using struct tags
func Validate(s *Settings) error {
	if err := validate.Struct(s); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into user-friendly messages.
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok && len(validationErrs) > 0 {
		e := validationErrs[0]
		return errors.Newf(errors.ErrConfigValid, "%s: validation failed on '%s' tag (value: %v)",
			e.Namespace(), e.Tag(), e.Value()).
			WithDetail("field", e.Namespace())
	}
	return errors.Wrap(err, errors.ErrConfigValid, "invalid configuration")
}
