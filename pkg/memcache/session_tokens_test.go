package mem

import (
	"testing"
	"time"
)

func TestSessionLookupAndConsume(t *testing.T) {
	store := NewSessionTokens()
	store.Create("tok", "account-1", time.Minute)

	if got := store.Lookup("tok"); got != "account-1" {
		t.Fatalf("lookup should not consume, got %q", got)
	}
	if got := store.Consume("tok"); got != "account-1" {
		t.Fatalf("expected account-1, got %q", got)
	}
	if got := store.Consume("tok"); got != "" {
		t.Fatalf("tokens are single-use, got %q", got)
	}
}

func TestSessionExpiry(t *testing.T) {
	store := NewSessionTokens()
	store.Create("tok", "account-1", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if got := store.Consume("tok"); got != "" {
		t.Fatalf("expired token should be rejected, got %q", got)
	}
}

func TestSessionInvalidate(t *testing.T) {
	store := NewSessionTokens()
	store.Create("tok", "account-1", time.Minute)
	store.Invalidate("tok")

	if got := store.Lookup("tok"); got != "" {
		t.Fatalf("invalidated token should be gone, got %q", got)
	}
}
