// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"caltrack/internal/domain/entity"
	domainerrors "caltrack/internal/domain/errors"
	"caltrack/internal/domain/repository"
	"caltrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// diaryService implements the DiaryUsecase interface.
type diaryService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger

	// now supplies the write instant for new entries; swapped out in tests.
	now func() time.Time
}

// NewDiaryService is the constructor for diaryService.
func NewDiaryService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.DiaryUsecase {
	return &diaryService{
		txManager: txManager,
		logger:    logger,
		now:       time.Now,
	}
}

// LogConsumption reconciles a consumption into the user's diary. The entry is
// bucketed by the UTC calendar day of the write instant: a product already
// logged today is replaced in place, anything else is appended. The whole
// read-modify-write runs inside one transaction with the diary row locked, so
// concurrent logs for the same user serialize and the per-(product, day)
// uniqueness holds.
func (srv *diaryService) LogConsumption(ctx context.Context, userID uuid.UUID, input *usecase.LogConsumptionInput) (*entity.DiaryEntry, error) {
	if input == nil || input.ProductID == uuid.Nil {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("product id is required")
	}
	if input.Weight <= 0 {
		return nil, domainerrors.ErrInvalidWeight.WrapMessage("non-positive product weight")
	}

	srv.logger.Debug("Logging consumption", "userID", userID, "productID", input.ProductID)

	var result *entity.DiaryEntry

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()
		diaryRepo := repoFactory.DiaryRepo()

		// 1. Resolve the product's calorie density.
		product, err := productRepo.FindByID(ctx, input.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "unknown product")
			}

			return errors.Wrap(err, "failed to find product")
		}

		// 2. Load the user's diary under lock, creating it lazily.
		diary, err := diaryRepo.FindByUserIDForUpdate(ctx, userID)
		if err != nil {
			if !errors.Is(err, repository.ErrDiaryNotFound) {
				return errors.Wrap(err, "failed to find diary")
			}

			diary = &entity.Diary{UserID: userID}
			if err := diaryRepo.Create(ctx, diary); err != nil {
				if !errors.Is(err, repository.ErrDiaryExists) {
					return errors.Wrap(err, "failed to create diary")
				}

				// Lost the create race against a concurrent first log;
				// take the winner's diary under lock instead.
				diary, err = diaryRepo.FindByUserIDForUpdate(ctx, userID)
				if err != nil {
					return errors.Wrap(err, "failed to find diary after create race")
				}
			}
		}

		// 3. Reconcile the entry into today's bucket and persist the result.
		result = diary.UpsertEntry(&entity.DiaryEntry{
			ID:        uuid.New(),
			ProductID: product.ID,
			Weight:    input.Weight,
			Calories:  entity.CaloriesFor(product.Calories, input.Weight),
			EatenAt:   srv.now().UTC(),
		})

		if err := diaryRepo.UpsertEntry(ctx, result); err != nil {
			return errors.Wrap(err, "failed to persist diary entry")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to log consumption")
	}

	return result, nil
}

// RemoveConsumption deletes one entry. The date locates the diary (it must
// hold at least one entry within that UTC day), the entryID identifies the
// entry itself. Removal is irreversible.
func (srv *diaryService) RemoveConsumption(ctx context.Context, userID uuid.UUID, date time.Time, entryID uuid.UUID) error {
	srv.logger.Debug("Removing consumption", "userID", userID, "entryID", entryID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		diaryRepo := repoFactory.DiaryRepo()

		diary, err := diaryRepo.FindByUserIDForUpdate(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrDiaryNotFound) {
				return errors.Wrap(domainerrors.ErrDiaryNotFound, "no diary for this user")
			}

			return errors.Wrap(err, "failed to find diary")
		}

		if len(diary.EntriesOn(date)) == 0 {
			return errors.Wrap(domainerrors.ErrDiaryNotFound, "no diary entry in date range")
		}

		if !diary.RemoveEntry(entryID) {
			return errors.Wrap(domainerrors.ErrEntryNotFound, "entry not in diary")
		}

		if err := diaryRepo.DeleteEntry(ctx, diary.ID, entryID); err != nil {
			if errors.Is(err, repository.ErrEntryNotFound) {
				return errors.Wrap(domainerrors.ErrEntryNotFound, "entry not in diary")
			}

			return errors.Wrap(err, "failed to delete diary entry")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to remove consumption")
	}

	return nil
}

// ListConsumption returns the entries whose write instant falls on the given
// UTC calendar day. "No diary yet" and "no entries that day" are both valid
// empty results.
func (srv *diaryService) ListConsumption(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.DiaryEntry, error) {
	var listed []*entity.DiaryEntry

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		diaryRepo := repoFactory.DiaryRepo()

		diary, err := diaryRepo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrDiaryNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find diary")
		}

		listed = diary.EntriesOn(date)

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list consumption")
	}

	if listed == nil {
		listed = []*entity.DiaryEntry{}
	}

	return listed, nil
}
