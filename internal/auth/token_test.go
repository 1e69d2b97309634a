package auth_test

import (
	"errors"
	"testing"
	"time"

	"task-manager/internal/auth"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestTokenManager_IssueAndVerify(t *testing.T) {
	mgr := auth.NewTokenManager(testSecret, 0)

	token, err := mgr.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	userID, err := mgr.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if userID != "user-1" {
		t.Fatalf("expected subject user-1, got %s", userID)
	}
}

func TestTokenManager_MalformedToken(t *testing.T) {
	mgr := auth.NewTokenManager(testSecret, 0)

	_, err := mgr.Verify("not-a-valid-jwt")
	if !errors.Is(err, auth.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenManager_TamperedToken(t *testing.T) {
	mgr := auth.NewTokenManager(testSecret, 0)

	token, err := mgr.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tampered := token[:len(token)-5] + "XXXXX"
	if _, err := mgr.Verify(tampered); !errors.Is(err, auth.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for tampered token, got %v", err)
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	mgr := auth.NewTokenManager(testSecret, 0)
	other := auth.NewTokenManager("different-secret", 0)

	token, err := mgr.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := other.Verify(token); !errors.Is(err, auth.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for wrong secret, got %v", err)
	}
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	// A negative TTL puts the exp claim in the past.
	mgr := auth.NewTokenManager(testSecret, -time.Minute)

	token, err := mgr.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := mgr.Verify(token); !errors.Is(err, auth.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenManager_UniqueTokensPerIssue(t *testing.T) {
	mgr := auth.NewTokenManager(testSecret, time.Hour)

	first, err := mgr.Issue("user-1")
	if err != nil {
		t.Fatalf("first Issue: %v", err)
	}
	second, err := mgr.Issue("user-1")
	if err != nil {
		t.Fatalf("second Issue: %v", err)
	}

	if first == second {
		t.Fatal("expected every issued token to be distinct")
	}
}
