// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"caltrack/internal/domain/entity"

	"github.com/google/uuid"
)

// DiaryUsecase defines the interface for consumption-diary operations.
type DiaryUsecase interface {
	// LogConsumption reconciles a consumed product into the user's diary for
	// the current UTC day and returns the resulting entry.
	LogConsumption(ctx context.Context, userID uuid.UUID, input *LogConsumptionInput) (*entity.DiaryEntry, error)

	// RemoveConsumption deletes one entry, located by the given calendar date
	// and the entry's own id.
	RemoveConsumption(ctx context.Context, userID uuid.UUID, date time.Time, entryID uuid.UUID) error

	// ListConsumption returns the entries logged on the given UTC calendar
	// day. An empty day yields an empty list, not an error.
	ListConsumption(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.DiaryEntry, error)
}

// --- Input DTOs ---

// LogConsumptionInput defines the data required to log a consumption.
type LogConsumptionInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Weight    float64   `json:"product_weight" validate:"required,gt=0"`
}
