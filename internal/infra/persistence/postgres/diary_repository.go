// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"caltrack/internal/domain/entity"
	domainerrors "caltrack/internal/domain/errors"
	"caltrack/internal/domain/repository"
	"caltrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// diaryRepository implements the repository.DiaryRepository interface.
type diaryRepository struct {
	db *gorm.DB
}

// NewDiaryRepository is the constructor for diaryRepository.
func NewDiaryRepository(db *gorm.DB) repository.DiaryRepository {
	return &diaryRepository{
		db: db,
	}
}

// FindByUserID retrieves the user's diary with all entries in insertion order.
func (repo *diaryRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Diary, error) {
	return repo.findByUserID(ctx, userID, false)
}

// FindByUserIDForUpdate retrieves the user's diary with a row-level lock.
// Concurrent writers for the same user block here until the surrounding
// transaction commits, which serializes the per-(product, day) reconciliation.
func (repo *diaryRepository) FindByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*entity.Diary, error) {
	return repo.findByUserID(ctx, userID, true)
}

func (repo *diaryRepository) findByUserID(ctx context.Context, userID uuid.UUID, forUpdate bool) (*entity.Diary, error) {
	query := repo.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var diaryM model.DiaryModel
	if err := query.
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("user_id = ?", userID).
		First(&diaryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDiaryNotFound
		}

		return nil, errors.Wrap(err, "failed to find diary by user ID")
	}

	return toDiaryDomain(&diaryM), nil
}

// Create persists a new, empty diary for a user.
func (repo *diaryRepository) Create(ctx context.Context, diary *entity.Diary) error {
	diaryM := fromDiaryDomain(diary)

	if err := repo.db.WithContext(ctx).Omit("Entries").Create(diaryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// A concurrent first log won the race.
			return repository.ErrDiaryExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create diary")
	}

	diary.ID = diaryM.ID
	diary.CreatedAt = diaryM.CreatedAt
	diary.UpdatedAt = diaryM.UpdatedAt

	return nil
}

// UpsertEntry persists a reconciled entry. The entry's id decides: an id that
// already exists is overwritten (the same-day replace case), a fresh id is
// inserted.
func (repo *diaryRepository) UpsertEntry(ctx context.Context, entry *entity.DiaryEntry) error {
	entryM := fromDiaryEntryDomain(entry)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"weight", "calories", "eaten_at", "updated_at"}),
		}).
		Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "entry references a missing diary or product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert diary entry")
	}

	entry.CreatedAt = entryM.CreatedAt
	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

// DeleteEntry removes one entry of the given diary by the entry's own id.
func (repo *diaryRepository) DeleteEntry(ctx context.Context, diaryID, entryID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("diary_id = ? AND id = ?", diaryID, entryID).
		Delete(&model.DiaryEntryModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete diary entry")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEntryNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDiaryDomain converts a GORM DiaryModel to a domain Diary entity.
func toDiaryDomain(data *model.DiaryModel) *entity.Diary {
	if data == nil {
		return nil
	}

	entries := make([]*entity.DiaryEntry, 0, len(data.Entries))
	for _, entryM := range data.Entries {
		entries = append(entries, toDiaryEntryDomain(entryM))
	}

	return &entity.Diary{
		ID:        data.ID,
		UserID:    data.UserID,
		Entries:   entries,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromDiaryDomain converts a domain Diary entity to a GORM DiaryModel.
func fromDiaryDomain(data *entity.Diary) *model.DiaryModel {
	if data == nil {
		return nil
	}

	return &model.DiaryModel{
		ID:     data.ID,
		UserID: data.UserID,
	}
}

// toDiaryEntryDomain converts a GORM DiaryEntryModel to a domain DiaryEntry entity.
func toDiaryEntryDomain(data *model.DiaryEntryModel) *entity.DiaryEntry {
	if data == nil {
		return nil
	}

	return &entity.DiaryEntry{
		ID:        data.ID,
		DiaryID:   data.DiaryID,
		ProductID: data.ProductID,
		Weight:    data.Weight,
		Calories:  data.Calories,
		EatenAt:   data.EatenAt.UTC(),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromDiaryEntryDomain converts a domain DiaryEntry entity to a GORM DiaryEntryModel.
func fromDiaryEntryDomain(data *entity.DiaryEntry) *model.DiaryEntryModel {
	if data == nil {
		return nil
	}

	return &model.DiaryEntryModel{
		ID:        data.ID,
		DiaryID:   data.DiaryID,
		ProductID: data.ProductID,
		Weight:    data.Weight,
		Calories:  data.Calories,
		EatenAt:   data.EatenAt,
	}
}
