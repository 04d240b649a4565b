// Package accounts is the registry of every account ever created on this
// store, kept as one JSON array in insertion order.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/wellkeeper/internal/client/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Account, error)
	Create(ctx context.Context, name, passphrase string, role models.Role) (*models.Account, error)
	Authenticate(ctx context.Context, name, passphrase string) (*models.Account, error)
}
