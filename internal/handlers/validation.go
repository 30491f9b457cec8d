package handlers

import (
	"sync"

	"github.com/SscSPs/currency_money/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// RegisterValidators adds the custom binding rules used by the request DTOs
// to gin's validator engine. It is safe to call more than once.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
			return domain.IsValidCode(fl.Field().String())
		})
	})
}
