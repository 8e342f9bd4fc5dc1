package repository

import (
	"context"

	"caltrack/internal/domain/entity"
)

// CalculatorRepository persists the per-user biometric profile submitted with
// authenticated recommendation requests.
type CalculatorRepository interface {
	// Save stores the profile, overwriting any previous profile for the same
	// user. At most one profile exists per user at all times.
	Save(ctx context.Context, profile *entity.CalculatorProfile) error
}
