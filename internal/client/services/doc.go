// Package services contains the use cases of the wellkeeper CLI: account
// and session handling, recording and editing logs, settings maintenance
// and read-only insights.
//
// Every service resolves the active account through the session repository
// on each call and hands it to the store repositories explicitly. Role
// checks live here: tracking writes need Role.CanTrack, care-network
// changes need Role.CanAdminister, meditation sessions are open to all.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/wellkeeper/internal/client/models"
	"github.com/dmitrijs2005/wellkeeper/internal/client/repositories/session"
	"github.com/dmitrijs2005/wellkeeper/internal/common"
)

func activeAccount(ctx context.Context, sessions session.Repository) (*models.Account, error) {
	acc, err := sessions.Active(ctx)
	if err != nil {
		return nil, fmt.Errorf("session error: %w", err)
	}
	return acc, nil
}

// authorize resolves the active account and checks it against allowed.
func authorize(ctx context.Context, sessions session.Repository, allowed func(models.Role) bool) (*models.Account, error) {
	acc, err := activeAccount(ctx, sessions)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, common.ErrNoActiveSession
	}
	if allowed != nil && !allowed(acc.Role) {
		return nil, fmt.Errorf("%w: role %s", common.ErrorForbidden, acc.Role)
	}
	return acc, nil
}
