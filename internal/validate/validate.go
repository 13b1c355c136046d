// Package validate holds the client-side preconditions enforced before a
// request is ever sent. A failed check is a local error; the backend still
// revalidates everything.
package validate

import (
	"regexp"
	"strings"
	"time"
)

var (
	reEmail  = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reDigits = regexp.MustCompile(`[0-9]`)
	reID     = regexp.MustCompile(`^[A-Za-z0-9-]{1,64}$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 50 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Password enforces the account policy: at least 8 characters with an upper
// case letter, a digit and a special character from the allowed set.
func Password(s string) bool {
	if len(s) < 8 {
		return false
	}
	var hasUpper, hasDigit, hasSpecial bool
	for _, r := range s {
		switch {
		case 'A' <= r && r <= 'Z':
			hasUpper = true
		case '0' <= r && r <= '9':
			hasDigit = true
		case strings.ContainsRune(".,@$!%*?&", r):
			hasSpecial = true
		case 'a' <= r && r <= 'z':
			// allowed, carries no requirement
		default:
			return false
		}
	}
	return hasUpper && hasDigit && hasSpecial
}

// Phone accepts at most 8 digits, ignoring separators.
func Phone(s string) bool {
	digits := len(reDigits.FindAllString(s, -1))
	return digits > 0 && digits <= 8
}

// Adult reports whether the birth date (YYYY-MM-DD) is at least 18 years in
// the past.
func Adult(birthDate string) bool {
	birth, err := time.Parse("2006-01-02", strings.TrimSpace(birthDate))
	if err != nil {
		return false
	}
	return !birth.After(time.Now().AddDate(-18, 0, 0))
}

// ID validates an opaque resource identifier (uuid-shaped tokens).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}
