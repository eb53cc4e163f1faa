package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"mdent-api/pkg/apperrors"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	// Report violations against the JSON field names clients actually send.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{
		validator: v,
	}
}

// Validate schema-checks a request struct. On failure it returns a
// validation failure carrying one issue per violated field.
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}
	return apperrors.Validation(cv.FormatValidationErrors(err))
}

func (cv *CustomValidator) FormatValidationErrors(err error) []apperrors.Issue {
	var issues []apperrors.Issue

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			var reason string
			switch e.Tag() {
			case "required":
				reason = field + " is required"
			case "email":
				reason = field + " must be a valid email address"
			case "min":
				reason = field + " must be at least " + e.Param() + " characters"
			case "max":
				reason = field + " must be at most " + e.Param() + " characters"
			case "datetime":
				reason = field + " must be a date in " + e.Param() + " format"
			case "oneof":
				reason = field + " must be one of: " + e.Param()
			default:
				reason = field + " is invalid"
			}
			issues = append(issues, apperrors.Issue{Field: field, Reason: reason})
		}
	} else {
		issues = append(issues, apperrors.Issue{Field: "", Reason: err.Error()})
	}

	return issues
}
