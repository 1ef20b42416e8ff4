// Package validation contains input validation rules shared by handlers and services.
package validation

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

var (
	usernameRegex = regexp.MustCompile(`^[-_a-z0-9]+$`)
	emailRegex    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

const (
	minUsernameLen = 3
	maxUsernameLen = 32
	minPasswordLen = 8
	maxPasswordLen = 128
	maxNameLen     = 512
)

// ValidateUsername enforces the slug format used for account handles.
func ValidateUsername(username string) error {
	if len(username) < minUsernameLen || len(username) > maxUsernameLen {
		return fmt.Errorf("username must be %d-%d characters", minUsernameLen, maxUsernameLen)
	}
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username may contain only lowercase letters, digits, hyphens, and underscores")
	}
	return nil
}

// ValidateEmail checks basic email shape. Deliverability is not verified.
func ValidateEmail(email string) error {
	if len(email) > 512 || !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// ValidatePassword enforces length bounds on raw passwords before hashing.
func ValidatePassword(password string) error {
	n := utf8.RuneCountInString(password)
	if n < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}
	if n > maxPasswordLen {
		return fmt.Errorf("password must be at most %d characters", maxPasswordLen)
	}
	return nil
}

// ValidateDisplayName checks the optional public display name.
func ValidateDisplayName(name string) error {
	if name == "" {
		return fmt.Errorf("display name cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return fmt.Errorf("display name must be at most %d characters", maxNameLen)
	}
	return nil
}
