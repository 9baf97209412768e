package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/eventsapp/notify-system/internal/core/domain"
)

type stubSessionRepo struct {
	account *domain.Account
	token   string
}

func (r *stubSessionRepo) Save(_ context.Context, account domain.Account, token string) error {
	clone := account
	r.account = &clone
	r.token = token
	return nil
}

func (r *stubSessionRepo) Load(_ context.Context) (*domain.Account, string, error) {
	if r.account == nil {
		return nil, "", domain.ErrNoSession
	}
	clone := *r.account
	return &clone, r.token, nil
}

func (r *stubSessionRepo) Clear(_ context.Context) error {
	r.account = nil
	r.token = ""
	return nil
}

func TestSessionService_SignIn_PersistsSnapshot(t *testing.T) {
	accountRepo := &stubAccountRepo{}
	sessions := &stubSessionRepo{}
	auth := newAuthService(accountRepo)
	svc := NewSessionService(auth, sessions, zerolog.Nop())

	_, _, _ = auth.Register(context.Background(), "Ana", "ana@x.com", "123456")

	token, account, err := svc.SignIn(context.Background(), "ana@x.com", "123456")
	if err != nil {
		t.Fatalf("SignIn returned error: %v", err)
	}
	if sessions.account == nil || sessions.account.ID != account.ID {
		t.Fatalf("session snapshot not persisted")
	}
	if sessions.token != token {
		t.Fatalf("token not persisted")
	}

	current, err := svc.Current(context.Background())
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if current.ID != account.ID {
		t.Fatalf("expected current account %s, got %s", account.ID, current.ID)
	}
}

func TestSessionService_SignIn_InvalidCredentialsLeaveNoSession(t *testing.T) {
	sessions := &stubSessionRepo{}
	svc := NewSessionService(newAuthService(&stubAccountRepo{}), sessions, zerolog.Nop())

	if _, _, err := svc.SignIn(context.Background(), "ghost@x.com", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if sessions.account != nil {
		t.Fatalf("failed sign-in must not persist a session")
	}
}

func TestSessionService_Register_OpensSession(t *testing.T) {
	sessions := &stubSessionRepo{}
	svc := NewSessionService(newAuthService(&stubAccountRepo{}), sessions, zerolog.Nop())

	token, account, err := svc.Register(context.Background(), "Ana", "ana@x.com", "123456")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" || account.ID != "client-1" {
		t.Fatalf("unexpected result: token=%q account=%+v", token, account)
	}
	if sessions.account == nil {
		t.Fatalf("registration must open a session")
	}
}

func TestSessionService_SignOut_ClearsSessionOnly(t *testing.T) {
	accountRepo := &stubAccountRepo{}
	sessions := &stubSessionRepo{}
	auth := newAuthService(accountRepo)
	svc := NewSessionService(auth, sessions, zerolog.Nop())

	_, _, _ = svc.Register(context.Background(), "Ana", "ana@x.com", "123456")

	if err := svc.SignOut(context.Background()); err != nil {
		t.Fatalf("SignOut returned error: %v", err)
	}

	if _, err := svc.Current(context.Background()); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
	if len(accountRepo.accounts) != 1 {
		t.Fatalf("sign-out must not touch registered accounts")
	}
}
