package usecase

import (
	"context"
	"time"

	"caltrack/internal/domain/entity"

	"github.com/google/uuid"
)

// SummaryUsecase derives daily nutrition summaries and keeps the cached
// summary history consistent with the diary it reflects.
type SummaryUsecase interface {
	// GetDailySummary computes the aggregate for the given UTC calendar day,
	// upserts it into the user's summary history and returns it. A day
	// without entries is a not-found condition, never a zero-valued summary.
	GetDailySummary(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.SummaryRecord, error)
}
