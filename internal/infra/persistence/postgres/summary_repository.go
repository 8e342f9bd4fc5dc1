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

// summaryRepository implements the repository.SummaryRepository interface.
type summaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository is the constructor for summaryRepository.
func NewSummaryRepository(db *gorm.DB) repository.SummaryRepository {
	return &summaryRepository{
		db: db,
	}
}

// FindByUserID retrieves the user's summary history with all records.
func (repo *summaryRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.SummaryHistory, error) {
	var historyM model.SummaryHistoryModel

	if err := repo.db.WithContext(ctx).
		Preload("Records", func(db *gorm.DB) *gorm.DB {
			return db.Order("day ASC")
		}).
		Where("user_id = ?", userID).
		First(&historyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSummaryHistoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find summary history by user ID")
	}

	return toSummaryHistoryDomain(&historyM), nil
}

// Create persists a new, empty summary history for a user.
func (repo *summaryRepository) Create(ctx context.Context, history *entity.SummaryHistory) error {
	historyM := fromSummaryHistoryDomain(history)

	if err := repo.db.WithContext(ctx).Omit("Records").Create(historyM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(err, "summary history already exists for user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create summary history")
	}

	history.ID = historyM.ID
	history.CreatedAt = historyM.CreatedAt
	history.UpdatedAt = historyM.UpdatedAt

	return nil
}

// UpsertRecord persists a reconciled record. The (history, day) unique index
// backstops the in-memory reconciliation: a conflicting day overwrites the
// stored numbers instead of inserting a duplicate.
func (repo *summaryRepository) UpsertRecord(ctx context.Context, record *entity.SummaryRecord) error {
	recordM := fromSummaryRecordDomain(record)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "history_id"}, {Name: "day"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"diary_id", "daily_rate", "daily_consumed", "daily_left", "percentage", "updated_at",
			}),
		}).
		Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "record references a missing history")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert summary record")
	}

	record.CreatedAt = recordM.CreatedAt
	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toSummaryHistoryDomain converts a GORM SummaryHistoryModel to a domain SummaryHistory entity.
func toSummaryHistoryDomain(data *model.SummaryHistoryModel) *entity.SummaryHistory {
	if data == nil {
		return nil
	}

	records := make([]*entity.SummaryRecord, 0, len(data.Records))
	for _, recordM := range data.Records {
		records = append(records, toSummaryRecordDomain(recordM))
	}

	return &entity.SummaryHistory{
		ID:        data.ID,
		UserID:    data.UserID,
		Records:   records,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromSummaryHistoryDomain converts a domain SummaryHistory entity to a GORM SummaryHistoryModel.
func fromSummaryHistoryDomain(data *entity.SummaryHistory) *model.SummaryHistoryModel {
	if data == nil {
		return nil
	}

	return &model.SummaryHistoryModel{
		ID:     data.ID,
		UserID: data.UserID,
	}
}

// toSummaryRecordDomain converts a GORM SummaryRecordModel to a domain SummaryRecord entity.
func toSummaryRecordDomain(data *model.SummaryRecordModel) *entity.SummaryRecord {
	if data == nil {
		return nil
	}

	return &entity.SummaryRecord{
		ID:            data.ID,
		HistoryID:     data.HistoryID,
		DiaryID:       data.DiaryID,
		Day:           entity.DayOf(data.Day),
		DailyRate:     data.DailyRate,
		DailyConsumed: data.DailyConsumed,
		DailyLeft:     data.DailyLeft,
		Percentage:    data.Percentage,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromSummaryRecordDomain converts a domain SummaryRecord entity to a GORM SummaryRecordModel.
func fromSummaryRecordDomain(data *entity.SummaryRecord) *model.SummaryRecordModel {
	if data == nil {
		return nil
	}

	return &model.SummaryRecordModel{
		ID:            data.ID,
		HistoryID:     data.HistoryID,
		DiaryID:       data.DiaryID,
		Day:           data.Day,
		DailyRate:     data.DailyRate,
		DailyConsumed: data.DailyConsumed,
		DailyLeft:     data.DailyLeft,
		Percentage:    data.Percentage,
	}
}
