package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/eventsapp/notify-system/internal/core/domain"
)

// SessionRepository persists the session snapshot under the KeyUser and
// KeyToken keys. Clearing the session leaves every other collection intact.
type SessionRepository struct {
	store *Store
}

func NewSessionRepository(store *Store) *SessionRepository {
	return &SessionRepository{store: store}
}

func (r *SessionRepository) Save(ctx context.Context, account domain.Account, token string) error {
	raw, err := json.Marshal(toStoredAccount(account))
	if err != nil {
		return fmt.Errorf("%w: encode session: %v", domain.ErrStorageWrite, err)
	}
	if err := r.store.Set(ctx, KeyUser, raw); err != nil {
		return fmt.Errorf("%w: session user: %v", domain.ErrStorageWrite, err)
	}
	if err := r.store.Set(ctx, KeyToken, []byte(token)); err != nil {
		return fmt.Errorf("%w: session token: %v", domain.ErrStorageWrite, err)
	}
	return nil
}

func (r *SessionRepository) Load(ctx context.Context) (*domain.Account, string, error) {
	raw, err := r.store.Get(ctx, KeyUser)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, "", domain.ErrNoSession
	}
	if err != nil {
		return nil, "", fmt.Errorf("%w: session user: %v", domain.ErrStorageRead, err)
	}

	var sa storedAccount
	if err := json.Unmarshal(raw, &sa); err != nil {
		return nil, "", fmt.Errorf("%w: decode session: %v", domain.ErrStorageRead, err)
	}

	token, err := r.store.Get(ctx, KeyToken)
	if err != nil && !errors.Is(err, ErrKeyNotFound) {
		return nil, "", fmt.Errorf("%w: session token: %v", domain.ErrStorageRead, err)
	}

	account := toAccount(sa)
	return &account, string(token), nil
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, KeyUser); err != nil {
		return fmt.Errorf("%w: session user: %v", domain.ErrStorageWrite, err)
	}
	if err := r.store.Delete(ctx, KeyToken); err != nil {
		return fmt.Errorf("%w: session token: %v", domain.ErrStorageWrite, err)
	}
	return nil
}
