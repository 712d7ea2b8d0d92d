// Package validation applies the declarative field rules shared by the auth,
// product, comment, and pagination payloads. Every rule on a payload is
// evaluated before the error list is returned, so a caller sees all problems
// at once.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"usedtech_backend/models"
)

var validate = validator.New()

func init() {
	// Report fields by their json name so errors address what the client sent
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
}

// Validate runs every rule on the payload and returns one message per failing
// field. An empty result means the payload is accepted. It never panics: a
// payload the validator cannot inspect yields a single generic violation.
func Validate(payload interface{}) []models.ErrorDetail {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []models.ErrorDetail{{Field: "payload", Message: "Invalid request payload"}}
	}

	details := make([]models.ErrorDetail, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, models.ErrorDetail{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return details
}

// NormalizeEmail folds case and strips surrounding whitespace before the
// email rule runs, so lookups and the unique constraint see one spelling.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Please provide a valid email"
	case "e164":
		return "Please provide a valid phone number"
	case "uuid":
		return fmt.Sprintf("Invalid %s", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(strings.Fields(fe.Param()), ", "))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
