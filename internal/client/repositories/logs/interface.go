package logs

import (
	"context"

	"github.com/dmitrijs2005/wellkeeper/internal/client/models"
)

type Repository interface {
	List(ctx context.Context, active *models.Account, accountID string) ([]models.LogEntry, error)
	Save(ctx context.Context, active *models.Account, draft models.LogDraft) (*models.LogEntry, error)
	Update(ctx context.Context, active *models.Account, id string, patch models.LogPatch) error
	Delete(ctx context.Context, active *models.Account, id string) error
	DailyRoutineCompletion(ctx context.Context, active *models.Account, date string) ([]string, error)
}
