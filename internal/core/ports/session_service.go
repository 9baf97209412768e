package ports

import (
	"context"

	"github.com/eventsapp/notify-system/internal/core/domain"
)

// SessionService resolves the current user and keeps the persisted session
// snapshot in step with sign-in, registration and sign-out.
type SessionService interface {
	SignIn(ctx context.Context, email, password string) (string, *domain.Account, error)
	Register(ctx context.Context, name, email, password string) (string, *domain.Account, error)
	// SignOut clears the persisted session keys; registered accounts and
	// reports are untouched.
	SignOut(ctx context.Context) error
	// Current returns the stored session account, or domain.ErrNoSession.
	Current(ctx context.Context) (*domain.Account, error)
}
