// Package settings stores one Settings record per account plus a default
// bucket. Reads never write: a missing record yields fresh defaults.
package settings

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/wellkeeper/internal/client/models"
	"github.com/dmitrijs2005/wellkeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/wellkeeper/internal/common"
)

type Repository interface {
	Get(ctx context.Context, active *models.Account) (models.Settings, error)
	Update(ctx context.Context, active *models.Account, patch models.SettingsPatch) error
}

type KVRepository struct {
	store kv.Repository
	mu    sync.Mutex
}

func NewKVRepository(store kv.Repository) *KVRepository {
	return &KVRepository{store: store}
}

func keyFor(active *models.Account) string {
	if active == nil {
		return common.SettingsKey("")
	}
	return common.SettingsKey(active.ID)
}

// Get returns the stored settings of active, or the defaults when nothing
// has been saved yet. A nil active reads the default bucket.
func (r *KVRepository) Get(ctx context.Context, active *models.Account) (models.Settings, error) {
	key := keyFor(active)

	var s models.Settings
	ok, err := kv.GetJSON(ctx, r.store, key, &s)
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	if !ok {
		return models.DefaultSettings(active), nil
	}
	return s, nil
}

// Update merges patch into the current settings of active and persists the
// result. Without an active account it does nothing.
func (r *KVRepository) Update(ctx context.Context, active *models.Account, patch models.SettingsPatch) error {
	if active == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.Get(ctx, active)
	if err != nil {
		return err
	}

	if err := kv.SetJSON(ctx, r.store, keyFor(active), patch.Apply(current)); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
