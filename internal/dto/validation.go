package dto

import "github.com/go-playground/validator/v10"

// validate is used for values that do not pass through gin's binding,
// such as URI parameters.
var validate = validator.New()

// ValidateAccountUUID checks that a URI-supplied account identifier is a
// well-formed v4 UUID.
func ValidateAccountUUID(accountUUID string) error {
	return validate.Var(accountUUID, "required,uuid4")
}
