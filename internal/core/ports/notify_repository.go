package ports

import (
	"context"

	"github.com/eventsapp/notify-system/internal/core/domain"
)

// NotifyRepository defines persistence operations for incident reports.
type NotifyRepository interface {
	// ListAll returns the full collection in storage (insertion) order.
	ListAll(ctx context.Context) ([]domain.Notify, error)
	Append(ctx context.Context, notify domain.Notify) error
	// UpdateStatus rewrites the collection with the matching report's status
	// replaced. An unknown id leaves the collection contents unchanged.
	UpdateStatus(ctx context.Context, id string, status domain.NotifyStatus) error
}
