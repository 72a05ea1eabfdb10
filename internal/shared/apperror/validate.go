package apperror

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	standalone     *validator.Validate
	standaloneOnce sync.Once
)

// Validator returns a process-wide validator with the same custom tags gin
// uses for request DTOs, for checks that run outside request binding.
func Validator() *validator.Validate {
	standaloneOnce.Do(func() {
		standalone = validator.New()
		_ = standalone.RegisterValidation("cpf", validateCPF)
	})
	return standalone
}

// ValidateVar checks a single value against tag, e.g. "required,email".
func ValidateVar(value any, tag string) error {
	return Validator().Var(value, tag)
}
