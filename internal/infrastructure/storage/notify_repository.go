package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/eventsapp/notify-system/internal/core/domain"
)

// NotifyRepository persists the reports collection as one JSON array under
// KeyNotifys, in insertion order.
type NotifyRepository struct {
	store *Store
}

func NewNotifyRepository(store *Store) *NotifyRepository {
	return &NotifyRepository{store: store}
}

func (r *NotifyRepository) ListAll(ctx context.Context) ([]domain.Notify, error) {
	raw, err := r.store.Get(ctx, KeyNotifys)
	if errors.Is(err, ErrKeyNotFound) {
		return []domain.Notify{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: notifys: %v", domain.ErrStorageRead, err)
	}

	var notifys []domain.Notify
	if err := json.Unmarshal(raw, &notifys); err != nil {
		return nil, fmt.Errorf("%w: decode notifys: %v", domain.ErrStorageRead, err)
	}
	return notifys, nil
}

// Append loads the full collection fresh, adds the report and rewrites
// everything.
func (r *NotifyRepository) Append(ctx context.Context, notify domain.Notify) error {
	err := r.store.Update(ctx, KeyNotifys, func(old []byte) ([]byte, error) {
		notifys, err := decodeNotifys(old)
		if err != nil {
			return nil, err
		}
		notifys = append(notifys, notify)
		return json.Marshal(notifys)
	})
	return wrapWriteErr(err, "notifys")
}

// UpdateStatus maps over the full collection replacing the status of the
// matching report, then rewrites the collection. An unknown id rewrites the
// collection unchanged.
func (r *NotifyRepository) UpdateStatus(ctx context.Context, id string, status domain.NotifyStatus) error {
	err := r.store.Update(ctx, KeyNotifys, func(old []byte) ([]byte, error) {
		notifys, err := decodeNotifys(old)
		if err != nil {
			return nil, err
		}
		for i := range notifys {
			if notifys[i].ID == id {
				notifys[i].Status = status
			}
		}
		return json.Marshal(notifys)
	})
	return wrapWriteErr(err, "notifys")
}

func decodeNotifys(raw []byte) ([]domain.Notify, error) {
	if len(raw) == 0 {
		return []domain.Notify{}, nil
	}
	var notifys []domain.Notify
	if err := json.Unmarshal(raw, &notifys); err != nil {
		return nil, fmt.Errorf("%w: decode notifys: %v", domain.ErrStorageRead, err)
	}
	return notifys, nil
}

func wrapWriteErr(err error, collection string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrStorageRead) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", domain.ErrStorageWrite, collection, err)
}
