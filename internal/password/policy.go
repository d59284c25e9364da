package password

import (
	"strings"
	"unicode"

	"github.com/hyeonju-dev/auth-server/internal/model"
)

const minLength = 8

const specials = `!@#$%^&*(),.?":{}|<>`

// ValidatePolicy checks signup password complexity: at least 8 characters,
// with at least one lowercase letter, one uppercase letter, one digit and
// one special character, and nothing outside those classes.
func ValidatePolicy(password string) error {
	if len(password) < minLength {
		return model.ErrWeakPassword
	}

	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(specials, r):
			special = true
		default:
			return model.ErrWeakPassword
		}
	}

	if !lower || !upper || !digit || !special {
		return model.ErrWeakPassword
	}
	return nil
}
