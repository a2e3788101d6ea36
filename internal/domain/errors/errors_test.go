package errors

import (
	stdErrors "errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"not found", ErrNotFound},
		{"already claimed", ErrAlreadyClaimed},
		{"not updated", ErrNotUpdated},
		{"invalid credentials", ErrInvalidCredentials},
		{"already exists", ErrAlreadyExists},
		{"username taken", ErrUsernameTaken},
		{"email taken", ErrEmailTaken},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	if stdErrors.Is(ErrUsernameTaken, ErrEmailTaken) {
		t.Fatal("expected username/email sentinels to be distinct")
	}
	if stdErrors.Is(ErrNotFound, ErrAlreadyClaimed) {
		t.Fatal("expected not found and claimed sentinels to be distinct")
	}
}
