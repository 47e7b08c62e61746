package static

import (
	"context"
	"errors"
	"testing"

	"med-tracker/internal/ports/auth"
)

func TestStore_LoginVerifyLogout(t *testing.T) {
	s := New()
	if err := s.Register("prime", "password", auth.RolePrime); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	token, claims, err := s.Login(context.Background(), "prime", "password")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if claims.Role != auth.RolePrime || claims.Username != "prime" {
		t.Fatalf("unexpected claims: %#v", claims)
	}
	if token != claims.SessionID {
		t.Fatalf("token must be the session id")
	}

	got, err := s.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if got != claims {
		t.Fatalf("Verify claims mismatch: %#v vs %#v", got, claims)
	}

	s.Logout(context.Background(), token)
	if _, err := s.Verify(context.Background(), token); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after logout, got %v", err)
	}
}

func TestStore_Login_BadPassword(t *testing.T) {
	s := New()
	_ = s.Register("prime", "password", auth.RolePrime)

	if _, _, err := s.Login(context.Background(), "prime", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := s.Login(context.Background(), "ghost", "password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestStore_AnonymousSession(t *testing.T) {
	s := New()

	token, claims := s.StartAnonymous(context.Background())
	if claims.Role != auth.RoleAnonymous {
		t.Fatalf("expected anonymous role, got %s", claims.Role)
	}

	got, err := s.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if got.SessionID != token {
		t.Fatalf("unexpected session id: %s", got.SessionID)
	}
}

func TestStore_Upgrade(t *testing.T) {
	s := New()
	token, _ := s.StartAnonymous(context.Background())

	if err := s.Upgrade(context.Background(), token, auth.RoleElite); err != nil {
		t.Fatalf("Upgrade error: %v", err)
	}

	claims, _ := s.Verify(context.Background(), token)
	if claims.Role != auth.RoleElite {
		t.Fatalf("expected elite after upgrade, got %s", claims.Role)
	}

	if err := s.Upgrade(context.Background(), "missing", auth.RolePrime); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestStore_Register_Duplicate(t *testing.T) {
	s := New()
	_ = s.Register("prime", "password", auth.RolePrime)

	if err := s.Register("prime", "other", auth.RoleElite); !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}
