package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// EmailPattern is deliberately loose: one @ with something on both
// sides. The server is the authority on whether an account exists.
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	// MaxNameLen caps display and label names
	MaxNameLen = 64
	// MinPasswordLen is the minimum account password length
	MinPasswordLen = 8
)

// ValidateEmail checks that email looks like an address
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("invalid email address: %s", email)
	}
	return nil
}

// ValidatePassword checks minimum account password requirements
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}
	return nil
}

// ValidateName checks a display name
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if len(name) > MaxNameLen {
		return fmt.Errorf("name must not exceed %d characters", MaxNameLen)
	}
	return nil
}
