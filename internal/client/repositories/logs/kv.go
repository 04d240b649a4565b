package logs

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/wellkeeper/internal/client/models"
	"github.com/dmitrijs2005/wellkeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/wellkeeper/internal/common"
	"github.com/google/uuid"
)

var (
	timeNow = time.Now
	newID   = uuid.NewString
)

type KVRepository struct {
	store kv.Repository
	mu    sync.Mutex
}

func NewKVRepository(store kv.Repository) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) load(ctx context.Context) ([]models.LogEntry, error) {
	var all []models.LogEntry
	if _, err := kv.GetJSON(ctx, r.store, common.LogsKey, &all); err != nil {
		return nil, fmt.Errorf("failed to load logs: %w", err)
	}
	return all, nil
}

func (r *KVRepository) save(ctx context.Context, all []models.LogEntry) error {
	if all == nil {
		all = []models.LogEntry{}
	}
	if err := kv.SetJSON(ctx, r.store, common.LogsKey, all); err != nil {
		return fmt.Errorf("failed to save logs: %w", err)
	}
	return nil
}

// List returns the entries owned by accountID, or by the active account
// when accountID is empty, in insertion order. Nothing is visible without
// an active session.
func (r *KVRepository) List(ctx context.Context, active *models.Account, accountID string) ([]models.LogEntry, error) {
	if active == nil {
		return []models.LogEntry{}, nil
	}
	if accountID == "" {
		accountID = active.ID
	}

	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	out := []models.LogEntry{}
	for _, e := range all {
		if e.UserID == accountID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Save stamps draft with a fresh id, the active account and the current
// time and appends it.
func (r *KVRepository) Save(ctx context.Context, active *models.Account, draft models.LogDraft) (*models.LogEntry, error) {
	if active == nil {
		return nil, common.ErrNoActiveSession
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	entry := models.LogEntry{
		ID:        newID(),
		UserID:    active.ID,
		Timestamp: timeNow(),
		Date:      draft.Date,
		Category:  draft.Category,
		InputData: draft.InputData,
		Notes:     draft.Notes,
	}
	all = append(all, entry)

	if err := r.save(ctx, all); err != nil {
		return nil, err
	}
	return &entry, nil
}

// canModify reports whether active may change e. Guides may maintain any
// account's entries.
func canModify(active *models.Account, e models.LogEntry) bool {
	return e.UserID == active.ID || active.Role.CanAdminister()
}

// Update applies patch to entry id and refreshes its timestamp. Missing or
// foreign ids are ignored.
func (r *KVRepository) Update(ctx context.Context, active *models.Account, id string, patch models.LogPatch) error {
	if active == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return err
	}

	i := slices.IndexFunc(all, func(e models.LogEntry) bool { return e.ID == id })
	if i < 0 || !canModify(active, all[i]) {
		return nil
	}

	updated, err := patch.Apply(all[i])
	if err != nil {
		return err
	}
	updated.Timestamp = timeNow()
	all[i] = updated

	return r.save(ctx, all)
}

// Delete removes entry id. Missing or foreign ids are ignored.
func (r *KVRepository) Delete(ctx context.Context, active *models.Account, id string) error {
	if active == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return err
	}

	i := slices.IndexFunc(all, func(e models.LogEntry) bool { return e.ID == id })
	if i < 0 || !canModify(active, all[i]) {
		return nil
	}

	return r.save(ctx, slices.Delete(all, i, i+1))
}

// DailyRoutineCompletion returns the routine ids the active account ticked
// off on date, taken from the first Routine entry of that day.
func (r *KVRepository) DailyRoutineCompletion(ctx context.Context, active *models.Account, date string) ([]string, error) {
	entries, err := r.List(ctx, active, "")
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		if e.Category != models.CategoryRoutine || e.Date != date {
			continue
		}
		p, err := e.Payload()
		if err != nil {
			return nil, err
		}
		ids := p.(models.RoutinePayload).CompletedIDs
		if ids == nil {
			ids = []string{}
		}
		return ids, nil
	}
	return []string{}, nil
}
