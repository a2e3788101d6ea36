package usecase

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	minUsernameLen = 4
	minPasswordLen = 8
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidationError carries per-field registration failures.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func (e *ValidationError) add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// NewFieldError builds a validation error for a single field.
func NewFieldError(field, message string) *ValidationError {
	e := &ValidationError{}
	e.add(field, message)
	return e
}

// ValidateRegistration applies the registration rules: username required and
// at least 4 characters, email required and well-formed, password required
// and at least 8 characters. Uniqueness is enforced by storage.
func ValidateRegistration(username, email, password string) *ValidationError {
	v := &ValidationError{}

	switch {
	case strings.TrimSpace(username) == "":
		v.add("username", "The username field is required.")
	case len(strings.TrimSpace(username)) < minUsernameLen:
		v.add("username", fmt.Sprintf("The username must be at least %d characters.", minUsernameLen))
	}

	switch {
	case strings.TrimSpace(email) == "":
		v.add("email", "The email field is required.")
	case !emailPattern.MatchString(strings.TrimSpace(email)):
		v.add("email", "The email must be a valid email address.")
	}

	switch {
	case password == "":
		v.add("password", "The password field is required.")
	case len(password) < minPasswordLen:
		v.add("password", fmt.Sprintf("The password must be at least %d characters.", minPasswordLen))
	}

	if len(v.Fields) == 0 {
		return nil
	}
	return v
}
