package sessions

import (
	"context"
	"errors"
	"testing"

	"resume-review/internal/shared/auth"
	"resume-review/internal/users"
)

func TestSignupNormalizesEmailAndIssuesToken(t *testing.T) {
	svc := NewService(users.NewMemoryRepo())

	session, err := svc.Signup(context.Background(), "  Alice@Example.COM ", "correct-horse")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if session.User.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", session.User.Email)
	}
	if session.User.ID == "" {
		t.Fatal("expected user id to be assigned")
	}
	if session.User.PasswordHash == "correct-horse" {
		t.Fatal("password must not be stored in the clear")
	}

	claims, err := auth.VerifyToken(session.Token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.UserID != session.User.ID {
		t.Fatalf("token subject = %q, want %q", claims.UserID, session.User.ID)
	}
}

func TestSignupRejectsBadInput(t *testing.T) {
	svc := NewService(users.NewMemoryRepo())

	if _, err := svc.Signup(context.Background(), "not-an-email", "long-enough"); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if _, err := svc.Signup(context.Background(), "a@b.com", "short7!"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
	// Exactly eight characters is allowed.
	if _, err := svc.Signup(context.Background(), "a@b.com", "eight8!!"); err != nil {
		t.Fatalf("expected eight-character password to pass, got %v", err)
	}
}

func TestSignupReportsTakenEmail(t *testing.T) {
	svc := NewService(users.NewMemoryRepo())
	if _, err := svc.Signup(context.Background(), "dup@example.com", "password1"); err != nil {
		t.Fatalf("first Signup: %v", err)
	}
	_, err := svc.Signup(context.Background(), "DUP@example.com", "password2")
	if !errors.Is(err, users.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginVerifiesPassword(t *testing.T) {
	svc := NewService(users.NewMemoryRepo())
	if _, err := svc.Signup(context.Background(), "bob@example.com", "hunter22!"); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	session, err := svc.Login(context.Background(), "Bob@Example.com", "hunter22!")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if session.Token == "" {
		t.Fatal("expected a token")
	}

	if _, err := svc.Login(context.Background(), "bob@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "nobody@example.com", "hunter22!"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestObserveDeliversCurrentStateThenTransitions(t *testing.T) {
	svc := NewService(users.NewMemoryRepo())

	var seen []State
	unsubscribe := svc.Observe(func(state State) {
		seen = append(seen, state)
	})

	if len(seen) != 1 {
		t.Fatalf("expected immediate callback, got %d calls", len(seen))
	}
	if seen[0].Authenticated {
		t.Fatal("initial state should be signed out")
	}

	session, err := svc.Signup(context.Background(), "carol@example.com", "password9")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if len(seen) != 2 || !seen[1].Authenticated || seen[1].User.ID != session.User.ID {
		t.Fatalf("expected sign-in transition, got %+v", seen)
	}

	svc.Logout()
	if len(seen) != 3 || seen[2].Authenticated {
		t.Fatalf("expected sign-out transition, got %+v", seen)
	}

	unsubscribe()
	if _, err := svc.Login(context.Background(), "carol@example.com", "password9"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if len(seen) != 3 {
		t.Fatalf("expected no callbacks after unsubscribe, got %d", len(seen))
	}
	if !svc.Current().Authenticated {
		t.Fatal("Current should reflect the latest sign-in")
	}
}
