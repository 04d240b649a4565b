package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/wellkeeper/internal/client/models"
	"github.com/dmitrijs2005/wellkeeper/internal/common"
)

// Settings prints the settings of the active account, or the shared
// defaults when nobody is logged in.
func (a *App) Settings(ctx context.Context) error {
	cfg, err := a.settingsService.Get(ctx)
	if err != nil {
		return err
	}

	a.printf("Name: %s\n", cfg.Name)
	a.printf("Routines:\n")
	for _, r := range cfg.Routines {
		reminder := "-"
		if r.ReminderTime != nil {
			reminder = r.ReminderTime.String()
		}
		a.printf("  %s  %s  [%s]\n", reminder, r.Text, r.ID)
	}
	a.printf("Goals:\n")
	for _, g := range cfg.Goals {
		mark := " "
		if g.Completed {
			mark = "x"
		}
		a.printf("  [%s] %3d%%  %s  [%s]\n", mark, g.Progress, g.Text, g.ID)
	}
	a.printf("Care network:\n")
	for _, p := range cfg.Providers {
		a.printf("  %s, %s, %s  [%s]\n", p.Name, p.Specialty, p.Contact, p.ID)
	}
	return nil
}

func (a *App) Rename(ctx context.Context) error {
	name, err := a.text("New display name")
	if err != nil {
		return err
	}
	return a.settingsService.Rename(ctx, name)
}

func (a *App) AddRoutine(ctx context.Context) error {
	text, err := a.text("Routine description")
	if err != nil {
		return err
	}
	at, err := a.text("Reminder time (HH:MM, empty for none)")
	if err != nil {
		return err
	}
	var reminder *models.ClockTime
	if at != "" {
		c, err := models.ParseClockTime(at)
		if err != nil {
			return err
		}
		reminder = &c
	}

	r, err := a.settingsService.AddRoutine(ctx, text, reminder)
	if err != nil {
		return err
	}
	a.printf("Routine added [%s]\n", r.ID)
	return nil
}

// EditRoutine changes a routine's text and reminder. Empty answers keep the
// current value.
func (a *App) EditRoutine(ctx context.Context) error {
	id, err := a.text("Enter routine id to edit")
	if err != nil {
		return err
	}
	text, err := a.text("New description (empty to keep)")
	if err != nil {
		return err
	}
	at, err := a.text("New reminder time (HH:MM, empty to keep)")
	if err != nil {
		return err
	}

	var newText *string
	if text != "" {
		newText = &text
	}
	var reminder *models.ClockTime
	if at != "" {
		c, err := models.ParseClockTime(at)
		if err != nil {
			return err
		}
		reminder = &c
	}

	if err := a.settingsService.UpdateRoutine(ctx, id, newText, reminder); err != nil {
		return err
	}
	a.printf("Routine updated.\n")
	return nil
}

func (a *App) RemoveRoutine(ctx context.Context) error {
	id, err := a.text("Enter routine id to remove")
	if err != nil {
		return err
	}
	return a.settingsService.RemoveRoutine(ctx, id)
}

func (a *App) AddGoal(ctx context.Context) error {
	text, err := a.text("Goal description")
	if err != nil {
		return err
	}
	g, err := a.settingsService.AddGoal(ctx, text)
	if err != nil {
		return err
	}
	a.printf("Goal added [%s]\n", g.ID)
	return nil
}

func (a *App) EditGoal(ctx context.Context) error {
	id, err := a.text("Enter goal id to edit")
	if err != nil {
		return err
	}
	text, err := a.text("New goal description")
	if err != nil {
		return err
	}
	if err := a.settingsService.EditGoalText(ctx, id, text); err != nil {
		return err
	}
	a.printf("Goal updated.\n")
	return nil
}

// GoalProgress moves a goal's progress by a signed percentage.
func (a *App) GoalProgress(ctx context.Context) error {
	id, err := a.text("Enter goal id")
	if err != nil {
		return err
	}
	delta, err := GetInt(a.reader, "Change in percent (e.g. 10 or -5)", a.out)
	if err != nil {
		return err
	}

	g, err := a.settingsService.AdjustGoalProgress(ctx, id, delta)
	if err != nil {
		return err
	}
	if g.Completed {
		a.printf("Goal completed: %s\n", g.Text)
	} else {
		a.printf("%s: %d%%\n", g.Text, g.Progress)
	}
	return nil
}

func (a *App) RemoveGoal(ctx context.Context) error {
	id, err := a.text("Enter goal id to remove")
	if err != nil {
		return err
	}
	return a.settingsService.RemoveGoal(ctx, id)
}

func (a *App) AddProvider(ctx context.Context) error {
	var p models.Provider
	var err error
	if p.Name, err = a.text("Provider name"); err != nil {
		return err
	}
	if p.Specialty, err = a.text("Specialty"); err != nil {
		return err
	}
	if p.Contact, err = a.text("Contact (phone, email or URL)"); err != nil {
		return err
	}

	added, err := a.settingsService.AddProvider(ctx, p)
	if err != nil {
		return err
	}
	a.printf("Provider added [%s]\n", added.ID)
	return nil
}

// EditProvider updates a care network entry field by field. Empty answers
// keep the current value.
func (a *App) EditProvider(ctx context.Context) error {
	id, err := a.text("Enter provider id to edit")
	if err != nil {
		return err
	}
	cfg, err := a.settingsService.Get(ctx)
	if err != nil {
		return err
	}
	i := slices.IndexFunc(cfg.Providers, func(p models.Provider) bool { return p.ID == id })
	if i < 0 {
		return common.ErrorNotFound
	}
	p := cfg.Providers[i]

	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"Provider name", &p.Name},
		{"Specialty", &p.Specialty},
		{"Contact (phone, email or URL)", &p.Contact},
	} {
		v, err := a.text(fmt.Sprintf("%s [%s] (empty to keep)", f.prompt, *f.dst))
		if err != nil {
			return err
		}
		if v != "" {
			*f.dst = v
		}
	}

	if err := a.settingsService.UpdateProvider(ctx, p); err != nil {
		return fmt.Errorf("update provider: %w", err)
	}
	a.printf("Provider updated.\n")
	return nil
}

func (a *App) RemoveProvider(ctx context.Context) error {
	id, err := a.text("Enter provider id to remove")
	if err != nil {
		return err
	}
	if err := a.settingsService.RemoveProvider(ctx, id); err != nil {
		return fmt.Errorf("remove provider: %w", err)
	}
	return nil
}
