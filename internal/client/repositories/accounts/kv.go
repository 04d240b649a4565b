package accounts

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/wellkeeper/internal/client/models"
	"github.com/dmitrijs2005/wellkeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/wellkeeper/internal/common"
	"github.com/google/uuid"
)

var (
	timeNow = time.Now
	newID   = uuid.NewString
)

type KVRepository struct {
	store kv.Repository
	mu    sync.Mutex
}

func NewKVRepository(store kv.Repository) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) load(ctx context.Context) ([]models.Account, error) {
	var list []models.Account
	if _, err := kv.GetJSON(ctx, r.store, common.AccountsKey, &list); err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	if list == nil {
		list = []models.Account{}
	}
	return list, nil
}

// List returns every account in insertion order.
func (r *KVRepository) List(ctx context.Context) ([]models.Account, error) {
	return r.load(ctx)
}

// Create appends a new account. Names are not required to be unique.
func (r *KVRepository) Create(ctx context.Context, name, passphrase string, role models.Role) (*models.Account, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", common.ErrInvalidRole, role)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	acc := models.Account{
		ID:         newID(),
		Name:       name,
		Passphrase: passphrase,
		Role:       role,
		CreatedAt:  timeNow(),
	}
	list = append(list, acc)

	if err := kv.SetJSON(ctx, r.store, common.AccountsKey, list); err != nil {
		return nil, fmt.Errorf("failed to save accounts: %w", err)
	}
	return &acc, nil
}

// Authenticate returns the first account, in insertion order, whose name
// matches case-insensitively and whose passphrase matches exactly.
func (r *KVRepository) Authenticate(ctx context.Context, name, passphrase string) (*models.Account, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if strings.EqualFold(list[i].Name, name) && list[i].Passphrase == passphrase {
			return &list[i], nil
		}
	}
	return nil, common.ErrorNotFound
}
