// Package session tracks the account that is currently logged in. The
// session is a snapshot of the account taken at login and survives
// restarts; it is not re-validated against the registry.
package session

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/wellkeeper/internal/client/models"
	"github.com/dmitrijs2005/wellkeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/wellkeeper/internal/common"
)

type Repository interface {
	Active(ctx context.Context) (*models.Account, error)
	SetActive(ctx context.Context, acc *models.Account) error
}

type KVRepository struct {
	store kv.Repository
}

func NewKVRepository(store kv.Repository) *KVRepository {
	return &KVRepository{store: store}
}

// Active returns the logged-in account, or (nil, nil) when nobody is.
func (r *KVRepository) Active(ctx context.Context) (*models.Account, error) {
	var acc models.Account
	ok, err := kv.GetJSON(ctx, r.store, common.ActiveAccountKey, &acc)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return &acc, nil
}

// SetActive overwrites the session with acc. A nil acc ends the session.
func (r *KVRepository) SetActive(ctx context.Context, acc *models.Account) error {
	if acc == nil {
		if err := r.store.Delete(ctx, common.ActiveAccountKey); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		return nil
	}
	if err := kv.SetJSON(ctx, r.store, common.ActiveAccountKey, acc); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
