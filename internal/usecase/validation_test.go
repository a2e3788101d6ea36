package usecase

import (
	"errors"
	"testing"
)

func TestValidateRegistrationAccepts(t *testing.T) {
	if v := ValidateRegistration("alice", "alice@example.com", "password123"); v != nil {
		t.Fatalf("expected nil, got %v", v.Fields)
	}
}

func TestValidateRegistrationCollectsAllFields(t *testing.T) {
	v := ValidateRegistration("", "", "")
	if v == nil {
		t.Fatal("expected validation error")
	}
	for _, field := range []string{"username", "email", "password"} {
		if len(v.Fields[field]) == 0 {
			t.Fatalf("expected failure on %q, got %v", field, v.Fields)
		}
	}
}

func TestValidateRegistrationMessages(t *testing.T) {
	cases := []struct {
		name     string
		username string
		email    string
		password string
		field    string
		message  string
	}{
		{"required username", "", "a@b.com", "password123", "username", "The username field is required."},
		{"short username", "abc", "a@b.com", "password123", "username", "The username must be at least 4 characters."},
		{"required email", "alice", "", "password123", "email", "The email field is required."},
		{"invalid email", "alice", "nope", "password123", "email", "The email must be a valid email address."},
		{"email without tld", "alice", "a@b", "password123", "email", "The email must be a valid email address."},
		{"required password", "alice", "a@b.com", "", "password", "The password field is required."},
		{"short password", "alice", "a@b.com", "1234567", "password", "The password must be at least 8 characters."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := ValidateRegistration(tc.username, tc.email, tc.password)
			if v == nil {
				t.Fatal("expected validation error")
			}
			got := v.Fields[tc.field]
			if len(got) != 1 || got[0] != tc.message {
				t.Fatalf("expected %q, got %v", tc.message, got)
			}
		})
	}
}

func TestValidationErrorBehavesAsError(t *testing.T) {
	err := NewFieldError("email", "The email has already been taken.")
	if err.Error() != "validation failed" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	var verr *ValidationError
	if !errors.As(error(err), &verr) {
		t.Fatal("expected errors.As to match")
	}
	if verr.Fields["email"][0] != "The email has already been taken." {
		t.Fatalf("unexpected fields %v", verr.Fields)
	}
}
