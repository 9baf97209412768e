package ports

import (
	"context"

	"github.com/eventsapp/notify-system/internal/core/domain"
)

// AuthService implements the account store contract: credential checks
// against the sentinel admin and the registered collection, registration with
// sequential ids, and the client listing used by the admin dashboard.
type AuthService interface {
	// Authenticate checks the sentinel admin first, then the registered
	// accounts. Any miss or password mismatch yields ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (string, *domain.Account, error)
	// Register creates a client account and returns it with a fresh token.
	Register(ctx context.Context, name, email, password string) (string, *domain.Account, error)
	// ListClients returns all non-admin accounts in registration order.
	ListClients(ctx context.Context) ([]domain.Account, error)
}
