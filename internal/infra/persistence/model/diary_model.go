package model

import (
	"time"

	"github.com/google/uuid"
)

// DiaryModel mirrors the 'diaries' table. One row per user; the row doubles
// as the lock anchor that serializes a user's diary writes.
type DiaryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Entries []*DiaryEntryModel `gorm:"foreignKey:DiaryID"`
}

// TableName explicitly sets the table name for GORM.
func (DiaryModel) TableName() string {
	return "diaries"
}

// DiaryEntryModel mirrors the 'diary_entries' table. The (diary, product,
// UTC day of eaten_at) uniqueness is enforced by the locked read-modify-write
// in the use case, not by a database constraint.
type DiaryEntryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DiaryID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Weight    float64   `gorm:"not null"`
	Calories  float64   `gorm:"not null"`
	EatenAt   time.Time `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DiaryEntryModel) TableName() string {
	return "diary_entries"
}
