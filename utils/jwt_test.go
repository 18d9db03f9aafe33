package utils

import (
	"os"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	os.Setenv("SESSION_SECRET", "utils-test-secret")
	os.Exit(m.Run())
}

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken(42, "alice", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseSessionToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 || claims.UserName != "alice" {
		t.Errorf("claims = %d/%q, want 42/alice", claims.UserID, claims.UserName)
	}
	if claims.ID == "" {
		t.Error("jti is empty; revocation would be impossible")
	}
}

func TestParseRejectsTamperedToken(t *testing.T) {
	token, err := GenerateSessionToken(1, "bob", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseSessionToken(token + "x"); err == nil {
		t.Error("tampered token parsed without error")
	}
}

func TestRevokeSession(t *testing.T) {
	token, err := GenerateSessionToken(7, "carol", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := ParseSessionToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if IsSessionRevoked(claims.ID) {
		t.Fatal("fresh session already revoked")
	}
	RevokeSession(claims.ID, claims.ExpiresAt.Time)
	if !IsSessionRevoked(claims.ID) {
		t.Error("revoked session still valid")
	}
}

func TestRevokeExpiredSessionIsNoop(t *testing.T) {
	RevokeSession("expired-jti", time.Now().Add(-time.Minute))
	if IsSessionRevoked("expired-jti") {
		t.Error("expired session should not be tracked")
	}
}
