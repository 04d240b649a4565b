package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/wellkeeper/internal/client/models"
	"github.com/dmitrijs2005/wellkeeper/internal/common"
	"github.com/dmitrijs2005/wellkeeper/internal/filex"
)

func (a *App) Mood(ctx context.Context) error {
	date, err := a.date("Date")
	if err != nil {
		return err
	}
	for _, m := range models.MoodScale {
		a.printf("  %d %s %s\n", m.Value, m.Emoji, m.Label)
	}
	value, err := GetInt(a.reader, "How do you feel (1-5)?", a.out)
	if err != nil {
		return err
	}
	reason, err := a.text("What shaped this mood? (optional)")
	if err != nil {
		return err
	}

	e, err := a.entryService.RecordMood(ctx, date, value, reason)
	if err != nil {
		return err
	}
	a.printf("Mood saved [%s]\n", e.ID)
	return nil
}

func (a *App) Journal(ctx context.Context) error {
	date, err := a.date("Date")
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Write your entry", a.out)
	if err != nil {
		return err
	}

	e, err := a.entryService.RecordJournal(ctx, date, content)
	if err != nil {
		return err
	}
	a.printf("Journal entry saved [%s]\n", e.ID)
	return nil
}

func (a *App) Gratitude(ctx context.Context) error {
	date, err := a.date("Date")
	if err != nil {
		return err
	}
	lines, err := GetLines(a.reader, "List up to three things you are grateful for", a.out)
	if err != nil {
		return err
	}

	e, err := a.entryService.RecordGratitude(ctx, date, lines)
	if err != nil {
		return err
	}
	a.printf("Gratitude saved [%s]\n", e.ID)
	return nil
}

func (a *App) Meditate(ctx context.Context) error {
	date, err := a.date("Date")
	if err != nil {
		return err
	}
	minutes, err := GetInt(a.reader, "Session length in minutes", a.out)
	if err != nil {
		return err
	}

	e, err := a.entryService.RecordMeditation(ctx, date, minutes*60)
	if err != nil {
		return err
	}
	a.printf("Meditation session saved [%s]\n", e.ID)
	return nil
}

// Routine toggles one of the configured routines for a day.
func (a *App) Routine(ctx context.Context) error {
	cfg, err := a.settingsService.Get(ctx)
	if err != nil {
		return err
	}
	if len(cfg.Routines) == 0 {
		a.printf("No routines configured. Use 'addroutine' first.\n")
		return nil
	}

	date, err := a.date("Date")
	if err != nil {
		return err
	}
	for i, r := range cfg.Routines {
		a.printf("  %d. %s\n", i+1, r.Text)
	}
	n, err := GetInt(a.reader, "Routine number to toggle", a.out)
	if err != nil {
		return err
	}
	if n < 1 || n > len(cfg.Routines) {
		return fmt.Errorf("no routine #%d", n)
	}

	done, err := a.entryService.ToggleRoutine(ctx, date, cfg.Routines[n-1].ID)
	if err != nil {
		return err
	}
	a.printf("%d of %d routines done on %s\n", len(done), len(cfg.Routines), date)
	return nil
}

func parseCategory(s string) (models.Category, error) {
	if s == "" {
		return "", nil
	}
	for _, c := range []models.Category{
		models.CategoryMood, models.CategoryRoutine, models.CategoryGratitude,
		models.CategoryJournal, models.CategoryGoal,
	} {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// describe renders the payload of e on one line.
func describe(e models.LogEntry) string {
	p, err := e.Payload()
	if err != nil {
		return string(e.InputData)
	}

	switch v := p.(type) {
	case models.MoodPayload:
		s := fmt.Sprintf("%s %s", v.Emoji, v.Label)
		if v.Reason != "" {
			s += ": " + v.Reason
		}
		return s
	case models.RoutinePayload:
		return fmt.Sprintf("%d routine(s) done", len(v.CompletedIDs))
	case models.GratitudePayload:
		return strings.Join(v.Entries, "; ")
	case models.JournalPayload:
		if e.IsMeditation() && v.DurationSeconds != nil {
			return fmt.Sprintf("meditated %d min", *v.DurationSeconds/60)
		}
		first, _, _ := strings.Cut(v.Content, "\n")
		return first
	case models.GoalPayload:
		return fmt.Sprintf("goal %s at %d%%", v.GoalID, v.Progress)
	}
	return string(e.InputData)
}

// List prints the active account's entries, newest first.
func (a *App) List(ctx context.Context, category string) error {
	c, err := parseCategory(category)
	if err != nil {
		return err
	}
	entries, err := a.entryService.List(ctx, c)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		a.printf("Nothing recorded yet.\n")
		return nil
	}
	for _, e := range entries {
		a.printf("%s  %-9s  %s  [%s]\n", e.Date, e.Category, describe(e), e.ID)
	}
	return nil
}

// Edit changes the notes of an entry; journal entries may also get new
// content.
func (a *App) Edit(ctx context.Context) error {
	id, err := a.text("Enter entry id to edit")
	if err != nil {
		return err
	}
	entries, err := a.entryService.List(ctx, "")
	if err != nil {
		return err
	}
	var target *models.LogEntry
	for i := range entries {
		if entries[i].ID == id {
			target = &entries[i]
			break
		}
	}
	if target == nil {
		return common.ErrorNotFound
	}

	var patch models.LogPatch
	if target.Category == models.CategoryJournal && !target.IsMeditation() {
		content, err := GetMultiline(a.reader, "New content (empty to keep)", a.out)
		if err != nil {
			return err
		}
		if content != "" {
			patch.Payload = models.JournalPayload{Content: content}
		}
	}
	notes, err := a.text("New notes (empty to keep)")
	if err != nil {
		return err
	}
	if notes != "" {
		patch.Notes = &notes
	}
	if patch.Payload == nil && patch.Notes == nil {
		a.printf("Nothing changed.\n")
		return nil
	}

	if err := a.entryService.Edit(ctx, id, patch); err != nil {
		return err
	}
	a.printf("Entry updated.\n")
	return nil
}

func (a *App) Delete(ctx context.Context) error {
	id, err := a.text("Enter entry id to delete")
	if err != nil {
		return err
	}
	if err := a.entryService.Delete(ctx, id); err != nil {
		return err
	}
	a.printf("Entry deleted.\n")
	return nil
}

// Export writes the journal archive to a file, or to the terminal when no
// path is given.
func (a *App) Export(ctx context.Context) error {
	start, err := a.text("From date (YYYY-MM-DD, empty for the beginning)")
	if err != nil {
		return err
	}
	end, err := a.text("To date (YYYY-MM-DD, empty for today)")
	if err != nil {
		return err
	}
	for _, d := range []string{start, end} {
		if d == "" {
			continue
		}
		if err := models.ValidateDate(d); err != nil {
			return err
		}
	}
	path, err := a.text("Output file (empty to print here)")
	if err != nil {
		return err
	}

	var w io.Writer = a.out
	if path != "" {
		if _, err := filex.EnsureParentDir(path); err != nil {
			return err
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}

	n, err := a.entryService.ExportJournal(ctx, w, start, end)
	if err != nil {
		return err
	}
	if path != "" {
		a.printf("Exported %d entries to %s\n", n, path)
	}
	return nil
}
