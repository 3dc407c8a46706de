package apierrors

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError creates a 400 error from binding validation failures
func ValidationError(validationErrs validator.ValidationErrors) *APIError {
	return BadRequest(CodeInvalidInput, buildValidationMessage(validationErrs))
}

// buildValidationMessage creates a user-friendly message from validation errors
func buildValidationMessage(validationErrs validator.ValidationErrors) string {
	if len(validationErrs) == 0 {
		return "Invalid request"
	}

	if len(validationErrs) == 1 {
		return getValidationMessage(validationErrs[0])
	}

	var messages []string
	for _, fieldErr := range validationErrs {
		messages = append(messages, getValidationMessage(fieldErr))
	}
	return "Validation failed: " + strings.Join(messages, "; ")
}

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(fieldErr validator.FieldError) string {
	field := fieldErr.Field()
	tag := fieldErr.Tag()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fieldErr.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fieldErr.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fieldErr.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fieldErr.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", field)
	case "dive":
		return fmt.Sprintf("%s contains an invalid entry", field)
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, tag)
	}
}
