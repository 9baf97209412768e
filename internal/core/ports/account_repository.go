package ports

import (
	"context"

	"github.com/eventsapp/notify-system/internal/core/domain"
)

// AccountRepository defines persistence for registered accounts. The backing
// store keeps the whole collection as one value, so Append is a full
// read-modify-write cycle and List always reflects registration order.
type AccountRepository interface {
	List(ctx context.Context) ([]domain.Account, error)
	Append(ctx context.Context, account domain.Account) error
}
