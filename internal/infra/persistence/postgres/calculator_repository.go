package postgres

import (
	"context"

	"caltrack/internal/domain/entity"
	domainerrors "caltrack/internal/domain/errors"
	"caltrack/internal/domain/repository"
	"caltrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// calculatorRepository implements the repository.CalculatorRepository interface.
type calculatorRepository struct {
	db *gorm.DB
}

// NewCalculatorRepository is the constructor for calculatorRepository.
func NewCalculatorRepository(db *gorm.DB) repository.CalculatorRepository {
	return &calculatorRepository{
		db: db,
	}
}

// Save stores the profile, overwriting any previous profile for the same user.
func (repo *calculatorRepository) Save(ctx context.Context, profile *entity.CalculatorProfile) error {
	profileM := fromCalculatorDomain(profile)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"height", "age", "current_weight", "desired_weight", "blood_type", "updated_at",
			}),
		}).
		Create(profileM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return errors.Wrap(err, "profile violates a data constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save calculator profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// fromCalculatorDomain converts a domain CalculatorProfile entity to a GORM CalculatorModel.
func fromCalculatorDomain(data *entity.CalculatorProfile) *model.CalculatorModel {
	if data == nil {
		return nil
	}

	return &model.CalculatorModel{
		ID:            data.ID,
		UserID:        data.UserID,
		Height:        data.Height,
		Age:           data.Age,
		CurrentWeight: data.CurrentWeight,
		DesiredWeight: data.DesiredWeight,
		BloodType:     int16(data.BloodType.Index()),
	}
}
