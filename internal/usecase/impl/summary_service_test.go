package impl

import (
	"context"
	"testing"
	"time"

	"caltrack/internal/domain/entity"
	domainerrors "caltrack/internal/domain/errors"
	"caltrack/internal/domain/repository"
	mockRepo "caltrack/internal/mocks/repository"
	"caltrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type summaryServiceFixtures struct {
	service   usecase.SummaryUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestSummaryService(t *testing.T) summaryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewSummaryService(txManager, newTestConfig(), newDiscardLogger())

	return summaryServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func newDiaryWithEntries(userID uuid.UUID, day time.Time, calories ...float64) *entity.Diary {
	diary := &entity.Diary{ID: uuid.New(), UserID: userID}
	for i, cal := range calories {
		diary.Entries = append(diary.Entries, &entity.DiaryEntry{
			ID:       uuid.New(),
			DiaryID:  diary.ID,
			Calories: cal,
			EatenAt:  day.Add(time.Duration(i+8) * time.Hour),
		})
	}

	return diary
}

func TestSummaryService_GetDailySummary_ComputesAndCaches(t *testing.T) {
	fx := createTestSummaryService(t)

	ctx := context.Background()
	userID := uuid.New()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	diary := newDiaryWithEntries(userID, day, 513, 250.5)
	history := &entity.SummaryHistory{ID: uuid.New(), UserID: userID}

	var persisted *entity.SummaryRecord

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		diaryRepo := mockRepo.NewMockDiaryRepository(t)
		summaryRepo := mockRepo.NewMockSummaryRepository(t)

		factory.EXPECT().DiaryRepo().Return(diaryRepo)
		factory.EXPECT().SummaryRepo().Return(summaryRepo)
		diaryRepo.EXPECT().FindByUserID(ctx, userID).Return(diary, nil)
		summaryRepo.EXPECT().FindByUserID(ctx, userID).Return(history, nil)
		summaryRepo.EXPECT().UpsertRecord(ctx, mock.AnythingOfType("*entity.SummaryRecord")).
			Run(func(ctx context.Context, record *entity.SummaryRecord) {
				persisted = record
			}).
			Return(nil)
	})

	record, err := fx.service.GetDailySummary(ctx, userID, day.Add(15*time.Hour))

	require.NoError(t, err)
	assert.Same(t, persisted, record)
	assert.Equal(t, diary.ID, record.DiaryID)
	assert.Equal(t, day, record.Day)
	assert.Equal(t, 2800.0, record.DailyRate)
	assert.InDelta(t, 763.5, record.DailyConsumed, 1e-9)
	assert.InDelta(t, record.DailyRate, record.DailyConsumed+record.DailyLeft, 1e-9)
	assert.InDelta(t, 27.27, record.Percentage, 1e-9)
	require.Len(t, history.Records, 1)
}

func TestSummaryService_GetDailySummary_OverwritesSameDayRecord(t *testing.T) {
	fx := createTestSummaryService(t)

	ctx := context.Background()
	userID := uuid.New()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	diary := newDiaryWithEntries(userID, day, 700)

	stale := &entity.SummaryRecord{
		ID:            uuid.New(),
		Day:           day,
		DailyRate:     2800,
		DailyConsumed: 513,
		DailyLeft:     2287,
		Percentage:    18.32,
	}
	history := &entity.SummaryHistory{ID: uuid.New(), UserID: userID, Records: []*entity.SummaryRecord{stale}}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		diaryRepo := mockRepo.NewMockDiaryRepository(t)
		summaryRepo := mockRepo.NewMockSummaryRepository(t)

		factory.EXPECT().DiaryRepo().Return(diaryRepo)
		factory.EXPECT().SummaryRepo().Return(summaryRepo)
		diaryRepo.EXPECT().FindByUserID(ctx, userID).Return(diary, nil)
		summaryRepo.EXPECT().FindByUserID(ctx, userID).Return(history, nil)
		summaryRepo.EXPECT().UpsertRecord(ctx, stale).Return(nil)
	})

	record, err := fx.service.GetDailySummary(ctx, userID, day)

	require.NoError(t, err)
	// The stale record keeps its identity but carries the fresh numbers.
	assert.Same(t, stale, record)
	assert.InDelta(t, 700, record.DailyConsumed, 1e-9)
	assert.InDelta(t, 2100, record.DailyLeft, 1e-9)
	assert.InDelta(t, 25, record.Percentage, 1e-9)
	require.Len(t, history.Records, 1)
}

func TestSummaryService_GetDailySummary_CreatesHistoryLazily(t *testing.T) {
	fx := createTestSummaryService(t)

	ctx := context.Background()
	userID := uuid.New()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	diary := newDiaryWithEntries(userID, day, 400)

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		diaryRepo := mockRepo.NewMockDiaryRepository(t)
		summaryRepo := mockRepo.NewMockSummaryRepository(t)

		factory.EXPECT().DiaryRepo().Return(diaryRepo)
		factory.EXPECT().SummaryRepo().Return(summaryRepo)
		diaryRepo.EXPECT().FindByUserID(ctx, userID).Return(diary, nil)
		summaryRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrSummaryHistoryNotFound)
		summaryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.SummaryHistory")).
			Run(func(ctx context.Context, history *entity.SummaryHistory) {
				history.ID = uuid.New()
			}).
			Return(nil)
		summaryRepo.EXPECT().UpsertRecord(ctx, mock.AnythingOfType("*entity.SummaryRecord")).Return(nil)
	})

	record, err := fx.service.GetDailySummary(ctx, userID, day)

	require.NoError(t, err)
	assert.InDelta(t, 400, record.DailyConsumed, 1e-9)
}

func TestSummaryService_GetDailySummary_EmptyDayIsNotFound(t *testing.T) {
	fx := createTestSummaryService(t)

	ctx := context.Background()
	userID := uuid.New()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	// Entries exist, just not on the requested day.
	diary := newDiaryWithEntries(userID, day.AddDate(0, 0, -1), 513)

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		diaryRepo := mockRepo.NewMockDiaryRepository(t)
		factory.EXPECT().DiaryRepo().Return(diaryRepo)
		factory.EXPECT().SummaryRepo().Return(mockRepo.NewMockSummaryRepository(t))
		diaryRepo.EXPECT().FindByUserID(ctx, userID).Return(diary, nil)
	})

	_, err := fx.service.GetDailySummary(ctx, userID, day)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDiaryNotFound))
}

func TestSummaryService_GetDailySummary_NoDiaryIsNotFound(t *testing.T) {
	fx := createTestSummaryService(t)

	ctx := context.Background()
	userID := uuid.New()

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		diaryRepo := mockRepo.NewMockDiaryRepository(t)
		factory.EXPECT().DiaryRepo().Return(diaryRepo)
		factory.EXPECT().SummaryRepo().Return(mockRepo.NewMockSummaryRepository(t))
		diaryRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrDiaryNotFound)
	})

	_, err := fx.service.GetDailySummary(ctx, userID, time.Now())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDiaryNotFound))
}
