package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokenService_IssueVerifyRoundTrip(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), time.Hour)

	tok, err := svc.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if tok == "" {
		t.Fatal("expected non-empty token")
	}

	userID, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != 42 {
		t.Errorf("expected user id 42, got %d", userID)
	}
}

func TestTokenService_ExpiredToken(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewTokenService([]byte("test-secret"), time.Hour).
		WithClock(func() time.Time { return base })

	tok, err := svc.Issue(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Still valid just inside the TTL.
	svc.WithClock(func() time.Time { return base.Add(59 * time.Minute) })
	if _, err := svc.Verify(tok); err != nil {
		t.Fatalf("expected valid token before expiry, got %v", err)
	}

	// Past issuance+TTL.
	svc.WithClock(func() time.Time { return base.Add(2 * time.Hour) })
	if _, err := svc.Verify(tok); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService([]byte("secret-a"), time.Hour)
	verifier := NewTokenService([]byte("secret-b"), time.Hour)

	tok, err := issuer.Issue(1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.Verify(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for foreign signature, got %v", err)
	}
}

func TestTokenService_MalformedToken(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJub25lIn0..", "x.y"} {
		if _, err := svc.Verify(tok); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("Verify(%q): expected ErrTokenInvalid, got %v", tok, err)
		}
	}
}
