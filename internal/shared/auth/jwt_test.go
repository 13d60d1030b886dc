package auth

import (
	"testing"
)

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := SignToken(Claims{UserID: "user-1", Email: "a@b.test"})
	if err != nil {
		t.Fatalf("SignToken: %v", err)
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("expected user-1, got %q", claims.UserID)
	}
	if claims.Email != "a@b.test" {
		t.Fatalf("expected email preserved, got %q", claims.Email)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := SignToken(Claims{UserID: "user-1"})
	if err != nil {
		t.Fatalf("SignToken: %v", err)
	}

	if _, err := VerifyToken(token + "x"); err == nil {
		t.Fatal("expected tampered token to fail verification")
	}
}

func TestSignRequiresUserID(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := SignToken(Claims{}); err == nil {
		t.Fatal("expected error for empty user id")
	}
}
