package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokensRoundTrip(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)
	raw, err := tokens.Issue("alice", RoleAdmin)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	claims, err := tokens.Validate(raw)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if claims.Subject != "alice" || claims.Role != RoleAdmin {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestTokensRejectsExpired(t *testing.T) {
	tokens := NewTokens("secret", time.Minute)
	issuedAt := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	tokens.now = func() time.Time { return issuedAt }
	raw, err := tokens.Issue("alice", RoleUser)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	tokens.now = func() time.Time { return issuedAt.Add(time.Hour) }
	if _, err := tokens.Validate(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokensRejectsForeignSecret(t *testing.T) {
	raw, err := NewTokens("one", time.Hour).Issue("alice", RoleUser)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := NewTokens("two", time.Hour).Validate(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := NewTokens("two", time.Hour).Validate(" "); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}
