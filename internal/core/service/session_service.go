package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/eventsapp/notify-system/internal/core/domain"
	"github.com/eventsapp/notify-system/internal/core/ports"
)

// SessionService keeps the persisted session snapshot (user + token keys) in
// step with sign-in, registration and sign-out. Authentication itself is
// delegated to the account store.
type SessionService struct {
	auth     ports.AuthService
	sessions ports.SessionRepository
	log      zerolog.Logger
}

func NewSessionService(auth ports.AuthService, sessions ports.SessionRepository, log zerolog.Logger) *SessionService {
	return &SessionService{auth: auth, sessions: sessions, log: log}
}

func (s *SessionService) SignIn(ctx context.Context, email, password string) (string, *domain.Account, error) {
	token, account, err := s.auth.Authenticate(ctx, email, password)
	if err != nil {
		return "", nil, err
	}

	if err := s.sessions.Save(ctx, *account, token); err != nil {
		return "", nil, err
	}

	s.log.Info().Str("account_id", account.ID).Str("role", account.Role).Msg("signed in")
	return token, account, nil
}

func (s *SessionService) Register(ctx context.Context, name, email, password string) (string, *domain.Account, error) {
	token, account, err := s.auth.Register(ctx, name, email, password)
	if err != nil {
		return "", nil, err
	}

	if err := s.sessions.Save(ctx, *account, token); err != nil {
		return "", nil, err
	}
	return token, account, nil
}

// SignOut clears the persisted session keys only; registered accounts and
// reports survive.
func (s *SessionService) SignOut(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return err
	}
	s.log.Info().Msg("signed out")
	return nil
}

// Current returns the stored session account, or domain.ErrNoSession.
func (s *SessionService) Current(ctx context.Context) (*domain.Account, error) {
	account, _, err := s.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	return account, nil
}
