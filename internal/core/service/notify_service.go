package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventsapp/notify-system/internal/core/domain"
	"github.com/eventsapp/notify-system/internal/core/ports"
)

// NotifyService implements the report store use cases.
type NotifyService struct {
	repo ports.NotifyRepository
	log  zerolog.Logger
}

func NewNotifyService(repo ports.NotifyRepository, log zerolog.Logger) *NotifyService {
	return &NotifyService{repo: repo, log: log}
}

// Create files a new incident report with status pending. Date, time, cep and
// a catalog event are required; the description is free text. The id is
// derived from the creation timestamp with no collision check.
func (s *NotifyService) Create(ctx context.Context, input ports.CreateNotifyInput) (*domain.Notify, error) {
	if input.Date == "" || input.Time == "" || input.CEP == "" || input.EventID == "" {
		return nil, fmt.Errorf("%w: date, time, cep and event are required", domain.ErrValidation)
	}

	event, ok := domain.EventByID(input.EventID)
	if !ok {
		return nil, fmt.Errorf("%w: unknown event %q", domain.ErrValidation, input.EventID)
	}

	notify := domain.Notify{
		ID:          strconv.FormatInt(time.Now().UnixNano(), 10),
		ClientID:    input.ClientID,
		ClientName:  input.ClientName,
		EventID:     event.ID,
		EventName:   event.Name,
		Date:        input.Date,
		Time:        input.Time,
		CEP:         input.CEP,
		Description: input.Description,
		Status:      domain.StatusPending,
	}

	if err := s.repo.Append(ctx, notify); err != nil {
		s.log.Error().Err(err).Str("client_id", input.ClientID).Msg("failed to persist report")
		return nil, err
	}

	s.log.Info().
		Str("notify_id", notify.ID).
		Str("client_id", notify.ClientID).
		Str("event", notify.EventName).
		Msg("report created")

	return &notify, nil
}

// ListAll returns the full collection in storage order.
func (s *NotifyService) ListAll(ctx context.Context) ([]domain.Notify, error) {
	return s.load(ctx)
}

// ListForOwner returns the reports whose clientId equals accountID.
func (s *NotifyService) ListForOwner(ctx context.Context, accountID string) ([]domain.Notify, error) {
	notifys, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	owned := make([]domain.Notify, 0, len(notifys))
	for _, n := range notifys {
		if n.ClientID == accountID {
			owned = append(owned, n)
		}
	}
	return owned, nil
}

// ListForEventRole returns the reports whose eventId equals accountID.
// Catalog ids ("1".."3") and registered-account ids ("client-N") are
// different namespaces, so this only matches hand-provisioned event-role
// accounts; carried over from the source system as observed.
func (s *NotifyService) ListForEventRole(ctx context.Context, accountID string) ([]domain.Notify, error) {
	notifys, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	assigned := make([]domain.Notify, 0, len(notifys))
	for _, n := range notifys {
		if n.EventID == accountID {
			assigned = append(assigned, n)
		}
	}
	return assigned, nil
}

// UpdateStatus moves a report to a terminal status. An unknown id is a
// silent no-op; terminal states are absorbing.
func (s *NotifyService) UpdateStatus(ctx context.Context, id string, status domain.NotifyStatus) error {
	if status != domain.StatusConfirmed && status != domain.StatusCancelled {
		return fmt.Errorf("%w: target status must be confirmed or cancelled", domain.ErrValidation)
	}

	notifys, err := s.repo.ListAll(ctx)
	if err != nil {
		return err
	}

	var current *domain.Notify
	for i := range notifys {
		if notifys[i].ID == id {
			current = &notifys[i]
			break
		}
	}
	if current == nil {
		s.log.Debug().Str("notify_id", id).Msg("status update for unknown report ignored")
		return nil
	}

	if !current.Status.CanTransitionTo(status) {
		return fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, current.Status, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		s.log.Error().Err(err).Str("notify_id", id).Msg("failed to update report status")
		return err
	}

	s.log.Info().Str("notify_id", id).Str("status", string(status)).Msg("report status updated")
	return nil
}

// load fetches the full collection; a read failure is logged and degrades to
// an empty collection rather than failing the caller.
func (s *NotifyService) load(ctx context.Context) ([]domain.Notify, error) {
	notifys, err := s.repo.ListAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load reports, serving empty collection")
		return []domain.Notify{}, nil
	}
	return notifys, nil
}
