package repository

import (
	"context"
	"errors"

	"caltrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSummaryHistoryNotFound is returned when a user has no summary history yet.
var ErrSummaryHistoryNotFound = errors.New("summary history not found")

// SummaryRepository defines the operations for the cached summary history.
type SummaryRepository interface {
	// FindByUserID retrieves the user's summary history with all records.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.SummaryHistory, error)

	// Create persists a new, empty summary history for a user.
	Create(ctx context.Context, history *entity.SummaryHistory) error

	// UpsertRecord persists a reconciled record: an existing id is overwritten,
	// a new id is inserted.
	UpsertRecord(ctx context.Context, record *entity.SummaryRecord) error
}
