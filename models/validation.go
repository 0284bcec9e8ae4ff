package models

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var phoneRe = regexp.MustCompile(`^\+?[0-9][0-9\s\-().]{6,19}$`)

// ValidPhone backs the "phone" binding tag used on profile, address
// and contact payloads.
func ValidPhone(fl validator.FieldLevel) bool {
	return phoneRe.MatchString(fl.Field().String())
}
