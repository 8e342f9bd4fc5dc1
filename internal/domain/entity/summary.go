package entity

import (
	"time"

	"github.com/google/uuid"
)

// SummaryHistory is the per-user collection of cached daily summaries.
// It holds derived data only: the diary remains the source of truth and a
// history can always be rebuilt from it.
type SummaryHistory struct {
	ID        uuid.UUID        // Unique identifier of the history.
	UserID    uuid.UUID        // The owning user; unique across histories.
	Records   []*SummaryRecord // One record per day with logged entries.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SummaryRecord is the cached nutrition aggregate for one (user, day).
// Invariant: DailyConsumed + DailyLeft == DailyRate (barring rounding) and
// Percentage == Round2(100 * DailyConsumed / DailyRate).
type SummaryRecord struct {
	ID            uuid.UUID // Unique identifier of the record.
	HistoryID     uuid.UUID // Foreign key back to the owning history.
	DiaryID       uuid.UUID // Non-owning reference to the summarized diary.
	Day           time.Time // UTC midnight of the summarized day.
	DailyRate     float64   // The user's daily calorie budget at computation time.
	DailyConsumed float64   // Sum of entry calories on Day.
	DailyLeft     float64   // Remaining budget. Negative means the budget was exceeded.
	Percentage    float64   // Consumed share of the budget, 2 decimals.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewSummaryRecord derives a summary record from a day's consumed calories
// and the user's daily rate.
func NewSummaryRecord(diaryID uuid.UUID, day time.Time, rate, consumed float64) *SummaryRecord {
	return &SummaryRecord{
		DiaryID:       diaryID,
		Day:           DayOf(day),
		DailyRate:     rate,
		DailyConsumed: consumed,
		DailyLeft:     rate - consumed,
		Percentage:    Round2(100 * consumed / rate),
	}
}

// UpsertRecord reconciles a freshly computed record into the history. An
// existing record for the same UTC day is overwritten in place (numbers and
// diary reference, keeping its identity); otherwise the record is appended.
// This mirrors the diary's per-day replace semantics so the history never
// accumulates duplicate records for one day.
func (h *SummaryHistory) UpsertRecord(record *SummaryRecord) *SummaryRecord {
	for _, existing := range h.Records {
		if SameUTCDay(existing.Day, record.Day) {
			existing.DiaryID = record.DiaryID
			existing.DailyRate = record.DailyRate
			existing.DailyConsumed = record.DailyConsumed
			existing.DailyLeft = record.DailyLeft
			existing.Percentage = record.Percentage

			return existing
		}
	}

	record.HistoryID = h.ID
	h.Records = append(h.Records, record)

	return record
}
