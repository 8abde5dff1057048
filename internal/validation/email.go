package validation

import "errors"

// ValidateEmail validates email format and length (RFC 5321 caps addresses at 254 characters)
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("email address is required")
	}

	if len(email) > 254 {
		return errors.New("email address is too long (max 254 characters)")
	}

	if err := Validator().Var(email, "email"); err != nil {
		return errors.New("invalid email address format")
	}

	return nil
}
