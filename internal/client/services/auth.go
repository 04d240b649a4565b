package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/wellkeeper/internal/client/models"
	"github.com/dmitrijs2005/wellkeeper/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/wellkeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/wellkeeper/internal/client/repositories/session"
	"github.com/dmitrijs2005/wellkeeper/internal/common"
	"github.com/dmitrijs2005/wellkeeper/internal/logging"
)

// AuthService defines account and session operations for the CLI.
//
// Contract:
//   - Register: create an account; it does not log in.
//   - Login: authenticate and make the account active.
//   - Logout: end the session.
//   - Active: the logged-in account or nil.
//   - Accounts: every registered account.
//   - ClearAllData: wipe every bucket of the store, for all accounts.
//     Guides only.
type AuthService interface {
	Register(ctx context.Context, name, passphrase string, role models.Role) (*models.Account, error)
	Login(ctx context.Context, name, passphrase string) (*models.Account, error)
	Logout(ctx context.Context) error
	Active(ctx context.Context) (*models.Account, error)
	Accounts(ctx context.Context) ([]models.Account, error)
	ClearAllData(ctx context.Context) error
}

type authService struct {
	store    kv.Repository
	accounts accounts.Repository
	sessions session.Repository
	log      logging.Logger
}

func NewAuthService(store kv.Repository, accounts accounts.Repository, sessions session.Repository, log logging.Logger) AuthService {
	return &authService{store: store, accounts: accounts, sessions: sessions, log: log}
}

func (a *authService) Register(ctx context.Context, name, passphrase string, role models.Role) (*models.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" || passphrase == "" {
		return nil, common.ErrEmptyCredentials
	}

	acc, err := a.accounts.Create(ctx, name, passphrase, role)
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	a.log.Info(ctx, "account registered", "id", acc.ID, "role", acc.Role)
	return acc, nil
}

// Login returns common.ErrorNotFound when no account matches.
func (a *authService) Login(ctx context.Context, name, passphrase string) (*models.Account, error) {
	acc, err := a.accounts.Authenticate(ctx, strings.TrimSpace(name), passphrase)
	if err != nil {
		return nil, err
	}
	if err := a.sessions.SetActive(ctx, acc); err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	a.log.Info(ctx, "logged in", "id", acc.ID)
	return acc, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.sessions.SetActive(ctx, nil); err != nil {
		return fmt.Errorf("logout error: %w", err)
	}
	a.log.Info(ctx, "logged out")
	return nil
}

func (a *authService) Active(ctx context.Context) (*models.Account, error) {
	return activeAccount(ctx, a.sessions)
}

func (a *authService) Accounts(ctx context.Context) ([]models.Account, error) {
	return a.accounts.List(ctx)
}

func (a *authService) ClearAllData(ctx context.Context) error {
	active, err := authorize(ctx, a.sessions, models.Role.CanAdminister)
	if err != nil {
		return err
	}
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("wipe error: %w", err)
	}
	a.log.Warn(ctx, "all data cleared", "by", active.ID)
	return nil
}
