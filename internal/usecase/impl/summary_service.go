package impl

import (
	"context"
	"log/slog"
	"time"

	"caltrack/config"
	"caltrack/internal/domain/entity"
	domainerrors "caltrack/internal/domain/errors"
	"caltrack/internal/domain/repository"
	"caltrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// summaryService implements the SummaryUsecase interface.
type summaryService struct {
	txManager repository.TransactionManager
	cfg       *config.Config
	logger    *slog.Logger
}

// NewSummaryService is the constructor for summaryService.
func NewSummaryService(
	txManager repository.TransactionManager,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SummaryUsecase {
	return &summaryService{
		txManager: txManager,
		cfg:       cfg,
		logger:    logger,
	}
}

// GetDailySummary recomputes the aggregate for one UTC calendar day from the
// diary (the source of truth) and upserts it into the user's summary history
// so the cache never accumulates duplicate per-day records.
func (srv *summaryService) GetDailySummary(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.SummaryRecord, error) {
	srv.logger.Debug("Computing daily summary", "userID", userID, "day", entity.DayOf(date))

	var result *entity.SummaryRecord

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		diaryRepo := repoFactory.DiaryRepo()
		summaryRepo := repoFactory.SummaryRepo()

		// 1. The diary must hold at least one entry on the requested day.
		// An empty day is "no data yet", never a zero-valued summary.
		diary, err := diaryRepo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrDiaryNotFound) {
				return errors.Wrap(domainerrors.ErrDiaryNotFound, "no diary for this user")
			}

			return errors.Wrap(err, "failed to find diary")
		}

		entries := diary.EntriesOn(date)
		if len(entries) == 0 {
			return errors.Wrap(domainerrors.ErrDiaryNotFound, "no diary entry for this date")
		}

		// 2. Derive the aggregate.
		var consumed float64
		for _, entry := range entries {
			consumed += entry.Calories
		}
		record := entity.NewSummaryRecord(diary.ID, date, srv.cfg.Recommendation.DailyRate, consumed)
		record.ID = uuid.New()

		// 3. Upsert into the history, creating the history lazily.
		history, err := summaryRepo.FindByUserID(ctx, userID)
		if err != nil {
			if !errors.Is(err, repository.ErrSummaryHistoryNotFound) {
				return errors.Wrap(err, "failed to find summary history")
			}

			history = &entity.SummaryHistory{UserID: userID}
			if err := summaryRepo.Create(ctx, history); err != nil {
				return errors.Wrap(err, "failed to create summary history")
			}
		}

		result = history.UpsertRecord(record)
		if err := summaryRepo.UpsertRecord(ctx, result); err != nil {
			return errors.Wrap(err, "failed to persist summary record")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get daily summary")
	}

	return result, nil
}
