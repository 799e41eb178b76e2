package service

import (
	"fmt"

	"github.com/vinimompox/products-service/internal/core/ports"
)

// MinPasswordLen is the minimum accepted password length for registration.
const MinPasswordLen = 8

// ValidateRegistration checks a registration payload and returns nil when it
// is valid, or a map of field name to violation message otherwise. Every
// rule is evaluated, so a payload with three problems reports three fields.
//
// The confirmation mismatch is attached to confirm_password, not password:
// the password itself may be perfectly fine, it is the confirmation that
// failed to match it. Comparison is byte-exact, no normalization.
func ValidateRegistration(p ports.RegistrationPayload) ports.FieldErrors {
	errs := ports.FieldErrors{}

	if p.Username == "" {
		errs["username"] = "username must not be empty"
	}

	switch {
	case p.Password == "":
		errs["password"] = "password must not be empty"
	case len(p.Password) < MinPasswordLen:
		errs["password"] = fmt.Sprintf("password must be at least %d characters", MinPasswordLen)
	}

	if p.ConfirmPassword == "" {
		errs["confirm_password"] = "password confirmation must not be empty"
	} else if p.Password != p.ConfirmPassword {
		errs["confirm_password"] = "passwords do not match"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
