package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/recipebook/recipe-book/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()
	// Report json names so messages match the request body.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. Failures wrap
// domain.ErrInvalidInput.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return domain.InvalidInput("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// tagMessages renders a failed rule; %[1]s is the json field, %[2]s the rule parameter.
var tagMessages = map[string]string{
	"required": "%[1]s is required",
	"email":    "%[1]s must be a valid email",
	"gt":       "%[1]s must be greater than %[2]s",
	"min":      "%[1]s must be at least %[2]s characters",
	"max":      "%[1]s must be at most %[2]s characters",
	"oneof":    "%[1]s must be one of: %[2]s",
}

func fieldError(fe validator.FieldError) string {
	if msg, ok := tagMessages[fe.Tag()]; ok {
		return fmt.Sprintf(msg, fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
}
