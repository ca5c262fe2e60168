package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	app_errors "talky/backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// This file provides a centralized, singleton-based validation helper for API
// request bodies, plus the JSON decoding step that runs before it.

var (
	// validate holds the single instance of the validator.
	validate *validator.Validate
	// once ensures that the validator is initialized only one time.
	once sync.Once
)

// errMalformedJSON is returned for bodies that are not valid JSON at all.
var errMalformedJSON = app_errors.New(app_errors.ErrInvalidRequest, "Invalid request: malformed JSON body")

// bodyShapeError reports a body that is valid JSON but not the expected shape:
// empty, or a value of the wrong type at field.
type bodyShapeError struct {
	field string
}

func (e *bodyShapeError) Error() string {
	if e.field == "" {
		return "Invalid request: unexpected request body"
	}
	return fmt.Sprintf("Invalid request: field '%s' has the wrong type", e.field)
}

func (e *bodyShapeError) Is(target error) bool { return target == app_errors.ErrInvalidRequest }

// getInstance uses sync.Once to safely initialize and return the validator singleton.
func getInstance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
	})
	return validate
}

// decodeJSONBody decodes the request body into dst.
func decodeJSONBody(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return &bodyShapeError{}
	case errors.As(err, &typeErr):
		return &bodyShapeError{field: typeErr.Field}
	default:
		return errMalformedJSON
	}
}

// validateRequest checks a given payload struct against the validation rules
// defined in its field tags (e.g., `validate:"required,min=1"`).
// If validation fails, it returns an `app_errors.ErrValidation` with a
// user-friendly, detailed message.
func validateRequest(payload interface{}) error {
	v := getInstance()
	err := v.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return app_errors.Wrap(app_errors.ErrValidation, "an unexpected error occurred during validation", err)
	}

	var errorMessages []string
	for _, fieldErr := range validationErrors {
		// Example output: "Field 'Role' failed on the 'required' tag"
		errMsg := fmt.Sprintf("Field '%s' failed on the '%s' tag", fieldErr.Field(), fieldErr.Tag())
		errorMessages = append(errorMessages, errMsg)
	}

	return app_errors.New(app_errors.ErrValidation, "Invalid request: "+strings.Join(errorMessages, "; "))
}
