// Package policy validates credentials before they reach the store.
// All functions are pure; callers normalize emails (trim, lower-case)
// before validating.
package policy

import (
	"regexp"
	"unicode"
)

// local-part @ domain . tld, no whitespace or extra '@' anywhere,
// tld at least two letters.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[a-zA-Z]{2,}$`)

// bcrypt rejects inputs longer than 72 bytes, so the bound is enforced as
// a validation rule rather than surfacing as a hashing failure.
const maxPasswordBytes = 72

func ValidateEmail(email string) bool {
	if email == "" {
		return false
	}
	return emailPattern.MatchString(email)
}

// ValidatePassword checks the password complexity rules and returns the
// first violated rule as a human-readable reason.
func ValidatePassword(password string) (bool, string) {
	if password == "" {
		return false, "Password is required"
	}
	if len(password) < 8 {
		return false, "Password must be at least 8 characters long"
	}
	if len(password) > maxPasswordBytes {
		return false, "Password must be at most 72 characters long"
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper {
		return false, "Password must contain at least one uppercase letter"
	}
	if !hasLower {
		return false, "Password must contain at least one lowercase letter"
	}
	if !hasDigit {
		return false, "Password must contain at least one number"
	}

	return true, ""
}
