package auth

import (
	"errors"
	"testing"
	"time"
)

func TestJWTStrategyRoundTrip(t *testing.T) {
	strategy := NewJWTStrategy("top-secret", Options{TTL: time.Hour})

	token, err := strategy.IssueToken(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	userID, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if userID != 42 {
		t.Fatalf("unexpected user id %d", userID)
	}
}

func TestJWTStrategyRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTStrategy("secret-one", Options{TTL: time.Hour})
	verifier := NewJWTStrategy("secret-two", Options{TTL: time.Hour})

	token, err := issuer.IssueToken(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategyRejectsGarbage(t *testing.T) {
	strategy := NewJWTStrategy("top-secret", Options{TTL: time.Hour})

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}

func TestJWTStrategyRejectsExpired(t *testing.T) {
	strategy := &JWTStrategy{secret: []byte("top-secret"), ttl: -time.Minute}

	token, err := strategy.IssueToken(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestJWTStrategyRejectsNonPositiveSubject(t *testing.T) {
	strategy := NewJWTStrategy("top-secret", Options{TTL: time.Hour})

	token, err := strategy.IssueToken(0)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for zero subject, got %v", err)
	}
}

func TestJWTStrategyDefaultsTTL(t *testing.T) {
	strategy := NewJWTStrategy("top-secret", Options{})
	if strategy.ttl != 24*time.Hour {
		t.Fatalf("unexpected ttl %v", strategy.ttl)
	}
}

func TestJWTStrategyName(t *testing.T) {
	if name := NewJWTStrategy("s", Options{}).Name(); name != "jwt" {
		t.Fatalf("unexpected name %q", name)
	}
}
