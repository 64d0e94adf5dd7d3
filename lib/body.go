package lib

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError represents a clean validation error for APIs
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is a structured validation error
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// ExtractAndValidateBody extracts and validates the request body into the provided struct type T
func ExtractAndValidateBody[T any](r *http.Request) (*T, error) {
	defer r.Body.Close()

	var body T

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&body); err != nil {
		return nil, err
	}

	if err := validate.Struct(body); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return nil, mapValidationErrors(ve)
		}
		return nil, err
	}

	return &body, nil
}

func mapValidationErrors(ve validator.ValidationErrors) error {
	out := &ValidationError{Errors: make([]FieldError, 0, len(ve))}
	for _, fe := range ve {
		out.Errors = append(out.Errors, FieldError{
			Field:   fe.Field(),
			Message: messageForTag(fe),
		})
	}
	return out
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "gte":
		return "must be at least " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}
