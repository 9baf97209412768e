package ports

import (
	"context"

	"github.com/eventsapp/notify-system/internal/core/domain"
)

// SessionRepository persists the current session snapshot (account + opaque
// token) under dedicated storage keys, mirroring how the app rebuilds its
// session on start. Load returns domain.ErrNoSession when no snapshot exists.
type SessionRepository interface {
	Save(ctx context.Context, account domain.Account, token string) error
	Load(ctx context.Context) (*domain.Account, string, error)
	Clear(ctx context.Context) error
}
