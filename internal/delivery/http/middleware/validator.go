package middleware

import (
	"github.com/go-playground/validator/v10"
)

// StructValidator plugs go-playground/validator into fiber's body binding.
type StructValidator struct {
	validate *validator.Validate
}

func NewStructValidator() *StructValidator {
	return &StructValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *StructValidator) Validate(out any) error {
	return v.validate.Struct(out)
}
