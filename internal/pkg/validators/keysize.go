package validators

import (
	"github.com/go-playground/validator/v10"
)

// RSABitStrengthValidation validates an RSA key bit strength field.
func RSABitStrengthValidation(fl validator.FieldLevel) bool {
	strength := fl.Field().Int()
	return strength == 512 || strength == 768 || strength == 1024 ||
		strength == 2048 || strength == 3072 || strength == 4096
}
