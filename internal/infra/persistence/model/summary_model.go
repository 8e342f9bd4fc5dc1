package model

import (
	"time"

	"github.com/google/uuid"
)

// SummaryHistoryModel mirrors the 'summary_histories' table. One row per user.
type SummaryHistoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Records []*SummaryRecordModel `gorm:"foreignKey:HistoryID"`
}

// TableName explicitly sets the table name for GORM.
func (SummaryHistoryModel) TableName() string {
	return "summary_histories"
}

// SummaryRecordModel mirrors the 'summary_records' table. (history_id, day)
// is the logical upsert key; Day stores the UTC day bucket as a date.
type SummaryRecordModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	HistoryID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_summary_records_history_day,priority:1"`
	DiaryID       uuid.UUID `gorm:"type:uuid;not null"`
	Day           time.Time `gorm:"type:date;not null;uniqueIndex:idx_summary_records_history_day,priority:2"`
	DailyRate     float64   `gorm:"not null"`
	DailyConsumed float64   `gorm:"not null"`
	DailyLeft     float64   `gorm:"not null"`
	Percentage    float64   `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (SummaryRecordModel) TableName() string {
	return "summary_records"
}
