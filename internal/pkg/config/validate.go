package config

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

func newValidator() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation("prime", validators.PrimeValidation); err != nil {
		return nil, fmt.Errorf("failed to register prime validation: %w", err)
	}
	if err := validate.RegisterValidation("rsaexponent", validators.PublicExponentValidation); err != nil {
		return nil, fmt.Errorf("failed to register rsaexponent validation: %w", err)
	}
	return validate, nil
}

// validateStruct runs the struct tags of s and flattens field errors into one message
func validateStruct(name string, s interface{}) error {
	validate, err := newValidator()
	if err != nil {
		return err
	}

	if err := validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed for %s: %v", name, messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
