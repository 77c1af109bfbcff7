package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	// Specialty names travel comma-joined in query strings.
	if err := v.RegisterValidation("nocomma", noComma); err != nil {
		panic("validator: register nocomma: " + err.Error())
	}
	return &CustomValidator{
		validator: v,
	}
}

func noComma(fl validator.FieldLevel) bool {
	return !strings.Contains(fl.Field().String(), ",")
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			case "nocomma":
				errors[field] = field + " must not contain a comma"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
