package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/wellkeeper/internal/client/models"
	"github.com/dmitrijs2005/wellkeeper/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/wellkeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/wellkeeper/internal/client/repositories/logs"
	"github.com/dmitrijs2005/wellkeeper/internal/client/repositories/session"
	"github.com/dmitrijs2005/wellkeeper/internal/client/repositories/settings"
	"github.com/dmitrijs2005/wellkeeper/internal/logging"
	"github.com/stretchr/testify/require"
)

type stubReflector struct {
	got  []models.LogEntry
	text string
}

func (s *stubReflector) Reflect(_ context.Context, logs []models.LogEntry) string {
	s.got = logs
	return s.text
}

type stack struct {
	store     *kv.MemoryRepository
	auth      AuthService
	entries   EntryService
	settings  SettingsService
	insights  InsightService
	reflector *stubReflector
}

func newStack(t *testing.T) *stack {
	t.Helper()
	store := kv.NewMemoryRepository()
	log := logging.Discard()

	sessions := session.NewKVRepository(store)
	logRepo := logs.NewKVRepository(store)
	settingsRepo := settings.NewKVRepository(store)
	refl := &stubReflector{text: "be still"}

	return &stack{
		store:     store,
		auth:      NewAuthService(store, accounts.NewKVRepository(store), sessions, log),
		entries:   NewEntryService(logRepo, sessions, log),
		settings:  NewSettingsService(settingsRepo, sessions, log),
		insights:  NewInsightService(logRepo, settingsRepo, sessions, refl, log),
		reflector: refl,
	}
}

// loginAs registers and logs in a fresh account.
func (s *stack) loginAs(t *testing.T, name string, role models.Role) *models.Account {
	t.Helper()
	ctx := context.Background()
	_, err := s.auth.Register(ctx, name, name+"-pw", role)
	require.NoError(t, err)
	acc, err := s.auth.Login(ctx, name, name+"-pw")
	require.NoError(t, err)
	return acc
}
