package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/wellkeeper/internal/client/models"
)

// getPassphrase is an indirection over the terminal prompt so tests can
// feed passphrases without a tty.
var getPassphrase = GetPassphrase

// Register prompts for a name, a passphrase and a role and creates the
// account. It does not log the new account in.
func (a *App) Register(ctx context.Context) error {
	name, err := a.text("Enter name")
	if err != nil {
		return err
	}
	passphrase, err := getPassphrase(a.out)
	if err != nil {
		return err
	}
	roleText, err := a.text("Choose role (Guest, Seeker, Guide)")
	if err != nil {
		return err
	}
	role, err := models.ParseRole(roleText)
	if err != nil {
		return err
	}

	acc, err := a.authService.Register(ctx, name, passphrase, role)
	if err != nil {
		return err
	}
	a.printf("Registered %s as %s. Use 'login' to start a session.\n", acc.Name, acc.Role)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	name, err := a.text("Enter name")
	if err != nil {
		return err
	}
	passphrase, err := getPassphrase(a.out)
	if err != nil {
		return err
	}

	acc, err := a.authService.Login(ctx, name, passphrase)
	if err != nil {
		return err
	}
	a.printf("Welcome back, %s.\n", acc.Name)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.printf("Logged out.\n")
	return nil
}

// WhoAmI prints the active account followed by every registered name.
func (a *App) WhoAmI(ctx context.Context) error {
	acc, err := a.authService.Active(ctx)
	if err != nil {
		return err
	}
	if acc == nil {
		a.printf("No active session.\n")
	} else {
		a.printf("%s (%s), member since %s\n", acc.Name, acc.Role, models.DateOf(acc.CreatedAt))
	}

	all, err := a.authService.Accounts(ctx)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(all))
	for _, x := range all {
		names = append(names, x.Name)
	}
	a.printf("Accounts on this device: %s\n", strings.Join(names, ", "))
	return nil
}

// Wipe removes every account, session, setting and log after the user
// types "yes".
func (a *App) Wipe(ctx context.Context) error {
	answer, err := a.text("This erases ALL data for ALL accounts. Type 'yes' to confirm")
	if err != nil {
		return err
	}
	if answer != "yes" {
		a.printf("Cancelled.\n")
		return nil
	}
	if err := a.authService.ClearAllData(ctx); err != nil {
		return err
	}
	a.printf("All data erased.\n")
	return nil
}
