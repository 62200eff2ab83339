package validators

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func InitValidators() {
	validate = validator.New()
}

// Export validate to use in handlers
func Validator() *validator.Validate {
	return validate
}
