package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the struct's validate tags.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// GetValidationErrors flattens validator errors into field -> rule pairs for
// the error envelope.
func GetValidationErrors(err error) map[string]string {
	errs := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["_"] = err.Error()
		return errs
	}
	for _, fieldErr := range validationErrors {
		errs[fieldErr.Field()] = fieldErr.Tag()
	}
	return errs
}
