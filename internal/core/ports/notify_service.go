package ports

import (
	"context"

	"github.com/eventsapp/notify-system/internal/core/domain"
)

// CreateNotifyInput carries all data needed to file a new incident report.
// ClientID and ClientName identify the reporting resident; EventID must
// reference the fixed incident catalog.
type CreateNotifyInput struct {
	ClientID    string
	ClientName  string
	EventID     string
	Date        string
	Time        string
	CEP         string
	Description string
}

// NotifyService defines use-case operations for incident reports.
type NotifyService interface {
	Create(ctx context.Context, input CreateNotifyInput) (*domain.Notify, error)
	ListAll(ctx context.Context) ([]domain.Notify, error)
	// ListForOwner returns the reports filed by the given account.
	ListForOwner(ctx context.Context, accountID string) ([]domain.Notify, error)
	// ListForEventRole returns reports whose catalog event id equals the
	// acting account's id. Catalog ids and account ids live in different
	// namespaces, so this matches only hand-provisioned event accounts;
	// behavior carried over from the source system as observed.
	ListForEventRole(ctx context.Context, accountID string) ([]domain.Notify, error)
	// UpdateStatus moves a pending report to a terminal status. An unknown
	// id is a silent no-op; a terminal report rejects further transitions.
	UpdateStatus(ctx context.Context, id string, status domain.NotifyStatus) error
}
