package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/wellkeeper/internal/client/config"
	"github.com/dmitrijs2005/wellkeeper/internal/client/models"
	"github.com/dmitrijs2005/wellkeeper/internal/client/reflection"
	"github.com/dmitrijs2005/wellkeeper/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/wellkeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/wellkeeper/internal/client/repositories/logs"
	"github.com/dmitrijs2005/wellkeeper/internal/client/repositories/session"
	"github.com/dmitrijs2005/wellkeeper/internal/client/repositories/settings"
	"github.com/dmitrijs2005/wellkeeper/internal/client/services"
	"github.com/dmitrijs2005/wellkeeper/internal/client/storage"
	"github.com/dmitrijs2005/wellkeeper/internal/logging"
)

// timeNow resolves "today" for prompts left empty.
var timeNow = time.Now

type App struct {
	config          *config.Config
	log             logging.Logger
	authService     services.AuthService
	entryService    services.EntryService
	settingsService services.SettingsService
	insightService  services.InsightService
	reader          *bufio.Reader
	out             io.Writer
	closeFn         func() error
}

// NewApp opens the configured storage backend and wires the services on
// top of it. A reflection model that cannot be built is logged and
// replaced by the offline fallback.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	store, err := storage.Open(ctx, c, log)
	if err != nil {
		return nil, err
	}

	model, err := reflection.NewOpenAIModel(c)
	if err != nil {
		log.Warn(ctx, "reflection model unavailable, using fallback", "error", err)
	}
	reflector := reflection.New(model, c.ReflectionTimeout, log)

	a := newApp(c, log, store.KV, reflector, bufio.NewReader(os.Stdin), os.Stdout)
	a.closeFn = store.Close
	return a, nil
}

func newApp(c *config.Config, log logging.Logger, store kv.Repository, reflector services.Reflector, r *bufio.Reader, w io.Writer) *App {
	accountRepo := accounts.NewKVRepository(store)
	sessionRepo := session.NewKVRepository(store)
	settingsRepo := settings.NewKVRepository(store)
	logRepo := logs.NewKVRepository(store)

	return &App{
		config:          c,
		log:             log,
		authService:     services.NewAuthService(store, accountRepo, sessionRepo, log),
		entryService:    services.NewEntryService(logRepo, sessionRepo, log),
		settingsService: services.NewSettingsService(settingsRepo, sessionRepo, log),
		insightService:  services.NewInsightService(logRepo, settingsRepo, sessionRepo, reflector, log),
		reader:          r,
		out:             w,
	}
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if a.closeFn == nil {
			return
		}
		if err := a.closeFn(); err != nil {
			a.log.Error(ctx, "failed to close storage", "error", err)
		}
	}()

	fmt.Fprintln(a.out, "Welcome to wellkeeper (type 'help' for commands)")
	runREPL(ctx, a, func() string { return a.status(ctx) }, a.reader)
	return nil
}

func (a *App) active(ctx context.Context) *models.Account {
	acc, err := a.authService.Active(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to read session", "error", err)
		return nil
	}
	return acc
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.active(ctx) != nil
}

func (a *App) status(ctx context.Context) string {
	acc := a.active(ctx)
	if acc == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", acc.Name, acc.Role)
}

func (a *App) text(prompt string) (string, error) {
	return GetSimpleText(a.reader, prompt, a.out)
}

// date reads a calendar day; an empty answer means today.
func (a *App) date(prompt string) (string, error) {
	s, err := a.text(prompt + " (YYYY-MM-DD, empty for today)")
	if err != nil {
		return "", err
	}
	if s == "" {
		return models.DateOf(timeNow()), nil
	}
	if err := models.ValidateDate(s); err != nil {
		return "", err
	}
	return s, nil
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
