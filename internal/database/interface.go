package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/countdown/internal/models"
)

// HistoryRepository records finished countdowns.
type HistoryRepository interface {
	RecordRun(ctx context.Context, run models.Run) (int64, error)
	RecentRuns(ctx context.Context, limit int) ([]models.Run, error)
	RunsForDay(ctx context.Context, day time.Time) ([]models.Run, error)
	CountForDay(ctx context.Context, day time.Time) (int, error)
}

var _ HistoryRepository = (*Database)(nil)
