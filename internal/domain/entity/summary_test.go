package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSummaryRecord(t *testing.T) {
	diaryID := uuid.New()
	day := time.Date(2026, 3, 14, 16, 20, 0, 0, time.UTC)

	record := NewSummaryRecord(diaryID, day, 2800, 684)

	assert.Equal(t, diaryID, record.DiaryID)
	assert.Equal(t, DayOf(day), record.Day)
	assert.InDelta(t, record.DailyRate, record.DailyConsumed+record.DailyLeft, 1e-9)
	assert.InDelta(t, 24.43, record.Percentage, 1e-9)
}

func TestNewSummaryRecord_OverBudgetIsNegativeLeft(t *testing.T) {
	record := NewSummaryRecord(uuid.New(), time.Now(), 2800, 3000)

	assert.InDelta(t, -200, record.DailyLeft, 1e-9)
	assert.InDelta(t, 107.14, record.Percentage, 1e-9)
}

func TestSummaryRecord_PercentageMonotonic(t *testing.T) {
	prev := -1.0
	for consumed := 0.0; consumed <= 5600; consumed += 137 {
		record := NewSummaryRecord(uuid.New(), time.Now(), 2800, consumed)
		assert.GreaterOrEqual(t, record.Percentage, prev)
		prev = record.Percentage
	}
}

func TestSummaryHistory_UpsertRecord_ReplacesSameDay(t *testing.T) {
	history := &SummaryHistory{ID: uuid.New(), UserID: uuid.New()}
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	first := history.UpsertRecord(NewSummaryRecord(uuid.New(), day, 2800, 513))
	newDiaryID := uuid.New()
	second := history.UpsertRecord(NewSummaryRecord(newDiaryID, day.Add(20*time.Hour), 2800, 684))

	require.Len(t, history.Records, 1)
	assert.Same(t, first, second)
	assert.Equal(t, newDiaryID, first.DiaryID)
	assert.InDelta(t, 684, first.DailyConsumed, 1e-9)
	assert.InDelta(t, 2116, first.DailyLeft, 1e-9)
}

func TestSummaryHistory_UpsertRecord_AppendsAcrossDays(t *testing.T) {
	history := &SummaryHistory{ID: uuid.New(), UserID: uuid.New()}
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	history.UpsertRecord(NewSummaryRecord(uuid.New(), day, 2800, 513))
	history.UpsertRecord(NewSummaryRecord(uuid.New(), day.AddDate(0, 0, 1), 2800, 171))

	assert.Len(t, history.Records, 2)
}
