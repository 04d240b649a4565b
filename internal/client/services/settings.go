package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/wellkeeper/internal/client/models"
	"github.com/dmitrijs2005/wellkeeper/internal/client/repositories/session"
	"github.com/dmitrijs2005/wellkeeper/internal/client/repositories/settings"
	"github.com/dmitrijs2005/wellkeeper/internal/common"
	"github.com/dmitrijs2005/wellkeeper/internal/logging"
	"github.com/google/uuid"
)

// SettingsService edits the active account's settings. Each mutation
// reads the current record, changes one list and writes that list back
// whole.
type SettingsService interface {
	Get(ctx context.Context) (models.Settings, error)
	Rename(ctx context.Context, name string) error

	AddRoutine(ctx context.Context, text string, reminder *models.ClockTime) (*models.RoutineItem, error)
	UpdateRoutine(ctx context.Context, id string, text *string, reminder *models.ClockTime) error
	RemoveRoutine(ctx context.Context, id string) error

	AddGoal(ctx context.Context, text string) (*models.GoalItem, error)
	EditGoalText(ctx context.Context, id, text string) error
	AdjustGoalProgress(ctx context.Context, id string, delta int) (*models.GoalItem, error)
	RemoveGoal(ctx context.Context, id string) error

	AddProvider(ctx context.Context, p models.Provider) (*models.Provider, error)
	UpdateProvider(ctx context.Context, p models.Provider) error
	RemoveProvider(ctx context.Context, id string) error
}

type settingsService struct {
	settings settings.Repository
	sessions session.Repository
	log      logging.Logger
}

func NewSettingsService(settingsRepo settings.Repository, sessions session.Repository, log logging.Logger) SettingsService {
	return &settingsService{settings: settingsRepo, sessions: sessions, log: log}
}

// Get works without a session and then returns the default bucket.
func (s *settingsService) Get(ctx context.Context) (models.Settings, error) {
	active, err := activeAccount(ctx, s.sessions)
	if err != nil {
		return models.Settings{}, err
	}
	return s.settings.Get(ctx, active)
}

// Rename changes the display name only; the account name is untouched.
// Guides only.
func (s *settingsService) Rename(ctx context.Context, name string) error {
	active, err := authorize(ctx, s.sessions, models.Role.CanAdminister)
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: empty name", common.ErrInvalidPayload)
	}
	return s.settings.Update(ctx, active, models.SettingsPatch{Name: &name})
}

// load authorizes the caller and returns the current settings.
func (s *settingsService) load(ctx context.Context, allowed func(models.Role) bool) (*models.Account, models.Settings, error) {
	active, err := authorize(ctx, s.sessions, allowed)
	if err != nil {
		return nil, models.Settings{}, err
	}
	cur, err := s.settings.Get(ctx, active)
	if err != nil {
		return nil, models.Settings{}, err
	}
	return active, cur, nil
}

func requireText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: empty text", common.ErrInvalidPayload)
	}
	return text, nil
}

func (s *settingsService) AddRoutine(ctx context.Context, text string, reminder *models.ClockTime) (*models.RoutineItem, error) {
	text, err := requireText(text)
	if err != nil {
		return nil, err
	}
	active, cur, err := s.load(ctx, models.Role.CanTrack)
	if err != nil {
		return nil, err
	}

	item := models.RoutineItem{ID: uuid.NewString(), Text: text, ReminderTime: reminder}
	routines := append(slices.Clone(cur.Routines), item)
	if err := s.settings.Update(ctx, active, models.SettingsPatch{Routines: &routines}); err != nil {
		return nil, err
	}
	s.log.Debug(ctx, "routine added", "id", item.ID)
	return &item, nil
}

// UpdateRoutine changes the text and/or reminder of routine id. A missing
// id returns common.ErrorNotFound.
func (s *settingsService) UpdateRoutine(ctx context.Context, id string, text *string, reminder *models.ClockTime) error {
	active, cur, err := s.load(ctx, models.Role.CanTrack)
	if err != nil {
		return err
	}

	routines := slices.Clone(cur.Routines)
	i := slices.IndexFunc(routines, func(r models.RoutineItem) bool { return r.ID == id })
	if i < 0 {
		return common.ErrorNotFound
	}
	if text != nil {
		t, err := requireText(*text)
		if err != nil {
			return err
		}
		routines[i].Text = t
	}
	if reminder != nil {
		routines[i].ReminderTime = reminder
	}
	return s.settings.Update(ctx, active, models.SettingsPatch{Routines: &routines})
}

func (s *settingsService) RemoveRoutine(ctx context.Context, id string) error {
	active, cur, err := s.load(ctx, models.Role.CanTrack)
	if err != nil {
		return err
	}
	routines := slices.DeleteFunc(slices.Clone(cur.Routines), func(r models.RoutineItem) bool { return r.ID == id })
	if len(routines) == len(cur.Routines) {
		return common.ErrorNotFound
	}
	return s.settings.Update(ctx, active, models.SettingsPatch{Routines: &routines})
}

func (s *settingsService) AddGoal(ctx context.Context, text string) (*models.GoalItem, error) {
	text, err := requireText(text)
	if err != nil {
		return nil, err
	}
	active, cur, err := s.load(ctx, models.Role.CanTrack)
	if err != nil {
		return nil, err
	}

	g := models.NewGoal(uuid.NewString(), text)
	goals := append(slices.Clone(cur.Goals), g)
	if err := s.settings.Update(ctx, active, models.SettingsPatch{Goals: &goals}); err != nil {
		return nil, err
	}
	s.log.Debug(ctx, "goal added", "id", g.ID)
	return &g, nil
}

// updateGoal applies fn to goal id and persists the goal list.
func (s *settingsService) updateGoal(ctx context.Context, id string, fn func(*models.GoalItem)) (*models.GoalItem, error) {
	active, cur, err := s.load(ctx, models.Role.CanTrack)
	if err != nil {
		return nil, err
	}

	goals := slices.Clone(cur.Goals)
	i := slices.IndexFunc(goals, func(g models.GoalItem) bool { return g.ID == id })
	if i < 0 {
		return nil, common.ErrorNotFound
	}
	fn(&goals[i])

	if err := s.settings.Update(ctx, active, models.SettingsPatch{Goals: &goals}); err != nil {
		return nil, err
	}
	g := goals[i]
	return &g, nil
}

func (s *settingsService) EditGoalText(ctx context.Context, id, text string) error {
	text, err := requireText(text)
	if err != nil {
		return err
	}
	_, err = s.updateGoal(ctx, id, func(g *models.GoalItem) { g.SetText(text) })
	return err
}

// AdjustGoalProgress moves progress by delta, clamped to [0, 100].
func (s *settingsService) AdjustGoalProgress(ctx context.Context, id string, delta int) (*models.GoalItem, error) {
	g, err := s.updateGoal(ctx, id, func(g *models.GoalItem) { g.AdjustProgress(delta) })
	if err != nil {
		return nil, err
	}
	if g.Completed {
		s.log.Info(ctx, "goal completed", "id", g.ID)
	}
	return g, nil
}

func (s *settingsService) RemoveGoal(ctx context.Context, id string) error {
	active, cur, err := s.load(ctx, models.Role.CanTrack)
	if err != nil {
		return err
	}
	goals := slices.DeleteFunc(slices.Clone(cur.Goals), func(g models.GoalItem) bool { return g.ID == id })
	if len(goals) == len(cur.Goals) {
		return common.ErrorNotFound
	}
	return s.settings.Update(ctx, active, models.SettingsPatch{Goals: &goals})
}

func validProvider(p models.Provider) error {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Contact) == "" {
		return fmt.Errorf("%w: provider needs a name and a contact", common.ErrInvalidPayload)
	}
	return nil
}

// AddProvider is restricted to guides. The id of p is replaced.
func (s *settingsService) AddProvider(ctx context.Context, p models.Provider) (*models.Provider, error) {
	if err := validProvider(p); err != nil {
		return nil, err
	}
	active, cur, err := s.load(ctx, models.Role.CanAdminister)
	if err != nil {
		return nil, err
	}

	p.ID = uuid.NewString()
	providers := append(slices.Clone(cur.Providers), p)
	if err := s.settings.Update(ctx, active, models.SettingsPatch{Providers: &providers}); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "provider added", "id", p.ID)
	return &p, nil
}

func (s *settingsService) UpdateProvider(ctx context.Context, p models.Provider) error {
	if err := validProvider(p); err != nil {
		return err
	}
	active, cur, err := s.load(ctx, models.Role.CanAdminister)
	if err != nil {
		return err
	}

	providers := slices.Clone(cur.Providers)
	i := slices.IndexFunc(providers, func(x models.Provider) bool { return x.ID == p.ID })
	if i < 0 {
		return common.ErrorNotFound
	}
	providers[i] = p
	return s.settings.Update(ctx, active, models.SettingsPatch{Providers: &providers})
}

func (s *settingsService) RemoveProvider(ctx context.Context, id string) error {
	active, cur, err := s.load(ctx, models.Role.CanAdminister)
	if err != nil {
		return err
	}
	providers := slices.DeleteFunc(slices.Clone(cur.Providers), func(p models.Provider) bool { return p.ID == id })
	if len(providers) == len(cur.Providers) {
		return common.ErrorNotFound
	}
	return s.settings.Update(ctx, active, models.SettingsPatch{Providers: &providers})
}
