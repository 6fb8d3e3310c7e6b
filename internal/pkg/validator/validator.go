package validator

import (
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate returns nil when the struct passes, otherwise a field->tag map
// suitable for a 400 response body.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}

// FieldErrors is the error form of Validate's map, returned by Check so
// service code can hand the failing fields back to the handler layer.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, tag := range e {
		parts = append(parts, field+": "+tag)
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, ", ")
}

// Check validates the entity's `validate` tags before it is persisted.
func Check(v interface{}) error {
	if fields := Validate(v); fields != nil {
		return FieldErrors(fields)
	}
	return nil
}
