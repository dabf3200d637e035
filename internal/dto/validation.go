package dto

import (
	"github.com/fuelsquad/manquants_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = RegisterValidations(v)
	return v
}

// RegisterValidations adds the custom rules used by request DTOs.
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("remark", validateRemark); err != nil {
		return err
	}
	return v.RegisterValidation("role", validateRole)
}

func validateRemark(fl validator.FieldLevel) bool {
	return domain.Remark(fl.Field().String()).IsValid()
}

func validateRole(fl validator.FieldLevel) bool {
	return domain.Role(fl.Field().String()).IsValid()
}

// Validate runs struct validation outside of gin binding.
func Validate(s any) error {
	return validate.Struct(s)
}
