package validators

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

// Var validates a single value against a validator tag, e.g.
// Var(email, "required,email").
func Var(field interface{}, tag string) error {
	return validate.Var(field, tag)
}

// CustomValidator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound payloads.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates the validator wired into the echo instance
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validate}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
