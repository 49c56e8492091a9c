package http

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"lendingapi/internal/httpx"
)

var validate = validator.New()

// ValidateStruct validates a request payload and translates failures into
// field-level error details for the response envelope.
func ValidateStruct(s interface{}) []httpx.ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []httpx.ErrorDetail{{Message: "invalid payload"}}
	}

	var details []httpx.ErrorDetail
	for _, fe := range verrs {
		details = append(details, httpx.ErrorDetail{
			Field:   strings.ToLower(fe.Field()),
			Message: messageForTag(fe),
		})
	}
	return details
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "invalid value"
	}
}
