package courier

import (
	"strings"

	"courierdesk/internal/pkg/validation"
)

func isValidID(id int64) bool {
	return id > 0
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidEmail(email string) bool {
	return validation.IsEmail(strings.TrimSpace(email))
}
