package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/eventsapp/notify-system/internal/core/domain"
)

// AccountRepository persists the registered-accounts collection as one JSON
// array under KeyAccounts. The sentinel admin is never stored.
type AccountRepository struct {
	store *Store
}

func NewAccountRepository(store *Store) *AccountRepository {
	return &AccountRepository{store: store}
}

// storedAccount is the persisted shape. Unlike domain.Account it carries the
// password hash, since the local store is the only credential source.
type storedAccount struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Image        string `json:"image"`
	PasswordHash string `json:"passwordHash"`
}

func (r *AccountRepository) List(ctx context.Context) ([]domain.Account, error) {
	raw, err := r.store.Get(ctx, KeyAccounts)
	if errors.Is(err, ErrKeyNotFound) {
		return []domain.Account{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: accounts: %v", domain.ErrStorageRead, err)
	}

	var stored []storedAccount
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("%w: decode accounts: %v", domain.ErrStorageRead, err)
	}

	accounts := make([]domain.Account, len(stored))
	for i, sa := range stored {
		accounts[i] = toAccount(sa)
	}
	return accounts, nil
}

// Append loads the full collection, adds the account and rewrites everything.
func (r *AccountRepository) Append(ctx context.Context, account domain.Account) error {
	err := r.store.Update(ctx, KeyAccounts, func(old []byte) ([]byte, error) {
		var stored []storedAccount
		if len(old) > 0 {
			if err := json.Unmarshal(old, &stored); err != nil {
				return nil, fmt.Errorf("%w: decode accounts: %v", domain.ErrStorageRead, err)
			}
		}
		stored = append(stored, toStoredAccount(account))
		return json.Marshal(stored)
	})
	if err != nil {
		if errors.Is(err, domain.ErrStorageRead) {
			return err
		}
		return fmt.Errorf("%w: accounts: %v", domain.ErrStorageWrite, err)
	}
	return nil
}

func toAccount(sa storedAccount) domain.Account {
	return domain.Account{
		ID:           sa.ID,
		Name:         sa.Name,
		Email:        sa.Email,
		Role:         sa.Role,
		Image:        sa.Image,
		PasswordHash: sa.PasswordHash,
	}
}

func toStoredAccount(a domain.Account) storedAccount {
	return storedAccount{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		Role:         a.Role,
		Image:        a.Image,
		PasswordHash: a.PasswordHash,
	}
}
