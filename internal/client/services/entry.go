package services

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dmitrijs2005/wellkeeper/internal/client/models"
	"github.com/dmitrijs2005/wellkeeper/internal/client/repositories/logs"
	"github.com/dmitrijs2005/wellkeeper/internal/client/repositories/session"
	"github.com/dmitrijs2005/wellkeeper/internal/common"
	"github.com/dmitrijs2005/wellkeeper/internal/logging"
)

type EntryService interface {
	RecordMood(ctx context.Context, date string, value int, reason string) (*models.LogEntry, error)
	RecordJournal(ctx context.Context, date, content string) (*models.LogEntry, error)
	RecordGratitude(ctx context.Context, date string, entries []string) (*models.LogEntry, error)
	RecordMeditation(ctx context.Context, date string, seconds int) (*models.LogEntry, error)
	ToggleRoutine(ctx context.Context, date, routineID string) ([]string, error)
	Edit(ctx context.Context, id string, patch models.LogPatch) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, category models.Category) ([]models.LogEntry, error)
	ExportJournal(ctx context.Context, w io.Writer, start, end string) (int, error)
}

type entryService struct {
	logs     logs.Repository
	sessions session.Repository
	log      logging.Logger
}

func NewEntryService(logRepo logs.Repository, sessions session.Repository, log logging.Logger) EntryService {
	return &entryService{logs: logRepo, sessions: sessions, log: log}
}

func (s *entryService) save(ctx context.Context, active *models.Account, date string, p models.Payload, notes string) (*models.LogEntry, error) {
	d, err := models.NewDraft(date, p, notes)
	if err != nil {
		return nil, err
	}
	e, err := s.logs.Save(ctx, active, d)
	if err != nil {
		return nil, fmt.Errorf("saving error: %w", err)
	}
	s.log.Debug(ctx, "log saved", "id", e.ID, "category", e.Category, "date", e.Date)
	return e, nil
}

// RecordMood stores a mood from the five-point scale; the reason doubles
// as the entry notes.
func (s *entryService) RecordMood(ctx context.Context, date string, value int, reason string) (*models.LogEntry, error) {
	active, err := authorize(ctx, s.sessions, models.Role.CanTrack)
	if err != nil {
		return nil, err
	}
	p, err := models.NewMoodPayload(value, reason)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, active, date, p, reason)
}

func (s *entryService) RecordJournal(ctx context.Context, date, content string) (*models.LogEntry, error) {
	active, err := authorize(ctx, s.sessions, models.Role.CanTrack)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: empty journal entry", common.ErrInvalidPayload)
	}
	return s.save(ctx, active, date, models.JournalPayload{Content: content}, "")
}

// RecordGratitude drops blank lines before saving; at least one and at most
// three entries must remain.
func (s *entryService) RecordGratitude(ctx context.Context, date string, entries []string) (*models.LogEntry, error) {
	active, err := authorize(ctx, s.sessions, models.Role.CanTrack)
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(entries))
	for _, e := range entries {
		if e = strings.TrimSpace(e); e != "" {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("%w: no gratitude entries", common.ErrInvalidPayload)
	}
	return s.save(ctx, active, date, models.GratitudePayload{Entries: kept}, "")
}

// RecordMeditation is allowed for every role.
func (s *entryService) RecordMeditation(ctx context.Context, date string, seconds int) (*models.LogEntry, error) {
	active, err := authorize(ctx, s.sessions, nil)
	if err != nil {
		return nil, err
	}
	d, err := models.NewMeditationDraft(date, seconds)
	if err != nil {
		return nil, err
	}
	e, err := s.logs.Save(ctx, active, d)
	if err != nil {
		return nil, fmt.Errorf("saving error: %w", err)
	}
	s.log.Debug(ctx, "meditation saved", "id", e.ID, "seconds", seconds)
	return e, nil
}

// ToggleRoutine flips routineID in the day's Routine entry, creating the
// entry on first use, and returns the new completed set.
func (s *entryService) ToggleRoutine(ctx context.Context, date, routineID string) ([]string, error) {
	active, err := authorize(ctx, s.sessions, models.Role.CanTrack)
	if err != nil {
		return nil, err
	}

	all, err := s.logs.List(ctx, active, "")
	if err != nil {
		return nil, err
	}
	i := slices.IndexFunc(all, func(e models.LogEntry) bool {
		return e.Category == models.CategoryRoutine && e.Date == date
	})

	var completed []string
	if i >= 0 {
		p, err := all[i].Payload()
		if err != nil {
			return nil, err
		}
		completed = p.(models.RoutinePayload).CompletedIDs
	}

	if j := slices.Index(completed, routineID); j >= 0 {
		completed = slices.Delete(slices.Clone(completed), j, j+1)
	} else {
		completed = append(slices.Clone(completed), routineID)
	}
	payload := models.RoutinePayload{CompletedIDs: completed}

	if i >= 0 {
		if err := s.logs.Update(ctx, active, all[i].ID, models.LogPatch{Payload: payload}); err != nil {
			return nil, fmt.Errorf("saving error: %w", err)
		}
	} else if _, err := s.save(ctx, active, date, payload, ""); err != nil {
		return nil, err
	}
	return completed, nil
}

// Edit patches an entry. Meditation sessions stay editable for every role;
// other entries need tracking rights.
func (s *entryService) Edit(ctx context.Context, id string, patch models.LogPatch) error {
	active, err := authorize(ctx, s.sessions, nil)
	if err != nil {
		return err
	}
	if patch.Payload != nil {
		if err := patch.Payload.Validate(); err != nil {
			return err
		}
	}
	if !active.Role.CanTrack() {
		e, err := s.find(ctx, active, id)
		if err != nil {
			return err
		}
		if e != nil && !e.IsMeditation() {
			return fmt.Errorf("%w: role %s", common.ErrorForbidden, active.Role)
		}
	}
	if err := s.logs.Update(ctx, active, id, patch); err != nil {
		return fmt.Errorf("update error: %w", err)
	}
	s.log.Debug(ctx, "log updated", "id", id)
	return nil
}

func (s *entryService) Delete(ctx context.Context, id string) error {
	active, err := authorize(ctx, s.sessions, nil)
	if err != nil {
		return err
	}
	if err := s.logs.Delete(ctx, active, id); err != nil {
		return fmt.Errorf("delete error: %w", err)
	}
	s.log.Debug(ctx, "log deleted", "id", id)
	return nil
}

func (s *entryService) find(ctx context.Context, active *models.Account, id string) (*models.LogEntry, error) {
	all, err := s.logs.List(ctx, active, "")
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, nil
}

// List returns the active account's entries of category, or of every
// category when it is empty, newest date first. Entries of one day keep
// newest-first timestamp order.
func (s *entryService) List(ctx context.Context, category models.Category) ([]models.LogEntry, error) {
	active, err := activeAccount(ctx, s.sessions)
	if err != nil {
		return nil, err
	}
	all, err := s.logs.List(ctx, active, "")
	if err != nil {
		return nil, err
	}

	out := make([]models.LogEntry, 0, len(all))
	for _, e := range all {
		if category == "" || e.Category == category {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(a, b models.LogEntry) int {
		if c := cmp.Compare(b.Date, a.Date); c != 0 {
			return c
		}
		return b.Timestamp.Compare(a.Timestamp)
	})
	return out, nil
}
