package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and flattens the field errors
// into one readable message.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		fieldErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		messages := make([]string, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			messages = append(messages, fmt.Sprintf("field '%s' failed on '%s'", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("%s", strings.Join(messages, "; "))
	}
	return nil
}
